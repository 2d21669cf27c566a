package card

import "math/rand"

// DeckSize 一副牌的总数：13 点数 × 4 花色 + 2 张王
const DeckSize = 54

// Deck 管理摸牌堆和弃牌堆
type Deck struct {
	cards   []*Card
	discard []*Card
}

// NewDeck 创建并洗好一副 54 张的牌
func NewDeck() *Deck {
	cards := make([]*Card, 0, DeckSize)
	for s := Hearts; s <= Spades; s++ {
		for r := RankA; r <= RankK; r++ {
			cards = append(cards, &Card{Rank: r, Suit: s})
		}
	}
	cards = append(cards, &Card{Rank: RankJoker, Suit: NoSuit}, &Card{Rank: RankJoker, Suit: NoSuit})

	d := &Deck{cards: cards}
	d.shuffle()
	return d
}

// shuffle 均匀随机打乱摸牌堆
// 洗牌是暗牌顺序唯一的随机来源
func (d *Deck) shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw 从堆顶摸一张牌
// 摸牌堆空了就把弃牌堆整体回收重洗；两堆都空返回 nil（牌已耗尽，非致命）
func (d *Deck) Draw() *Card {
	if len(d.cards) == 0 {
		if len(d.discard) == 0 {
			return nil
		}
		// 回收弃牌堆，重新洗牌（不保留弃牌顺序）
		d.cards = d.discard
		d.discard = nil
		d.shuffle()
	}

	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Discard 把一张牌放进弃牌堆
func (d *Deck) Discard(c *Card) {
	d.discard = append(d.discard, c)
}

// Count 摸牌堆剩余数量
func (d *Deck) Count() int {
	return len(d.cards)
}

// DiscardCount 弃牌堆数量
func (d *Deck) DiscardCount() int {
	return len(d.discard)
}
