package card

import "strconv"

// Rank 定义点数
type Rank int

// Suit 定义花色
type Suit int

const (
	RankA Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankJoker
)

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
	NoSuit // 王牌无花色
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankA:     "A",
	Rank2:     "2",
	Rank3:     "3",
	Rank4:     "4",
	Rank5:     "5",
	Rank6:     "6",
	Rank7:     "7",
	Rank8:     "8",
	Rank9:     "9",
	Rank10:    "10",
	RankJ:     "J",
	RankQ:     "Q",
	RankK:     "K",
	RankJoker: "Joker",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// suitNames 花色字符串映射表
var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
	Spades:   "Spades",
	NoSuit:   "",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return ""
}

// Initial 花色首字母，用于短名（AH、10S）
func (s Suit) Initial() string {
	if s == NoSuit {
		return ""
	}
	return suitNames[s][:1]
}

// Card 定义一张牌
// FaceUp 只影响其他观察者的可见性，自己的手牌始终可见
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// DisplayName 返回短名，如 "AH"、"10S"、"Joker"
func (c *Card) DisplayName() string {
	if c.Rank == RankJoker {
		return "Joker"
	}
	return c.Rank.String() + c.Suit.Initial()
}

// ScoreValue 结算时的分值：王 -1，花牌 10，A 1，数字牌按面值
func (c *Card) ScoreValue() int {
	switch c.Rank {
	case RankJoker:
		return -1
	case RankK, RankQ, RankJ:
		return 10
	case RankA:
		return 1
	default:
		return int(c.Rank)
	}
}
