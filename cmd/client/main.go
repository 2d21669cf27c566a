package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/kaboom/internal/logger"
	"github.com/palemoky/kaboom/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:5000", "服务器地址")
	flag.Parse()

	// TUI 占用终端，诊断日志全部落到 ~/.kaboom/debug.log
	if err := logger.Init(); err != nil {
		log.Printf("日志初始化失败: %v", err)
	}
	defer logger.Close()

	serverURL := fmt.Sprintf("ws://%s/ws", *serverAddr)

	model := ui.NewModel(serverURL)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
