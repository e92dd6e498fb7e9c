package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type AuctionWon struct {
	AuctionID  string    `json:"auction_id"`
	ProductID  string    `json:"product_id"`
	SellerID   string    `json:"seller_id"`
	BuyerID    string    `json:"buyer_id"`
	FinalPrice string    `json:"final_price"`
	WonAt      time.Time `json:"won_at"`
}

func randomUser(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, rand.Intn(20))
}

func generateAuctionWon() AuctionWon {
	// цена в копейках, чтобы всегда было два знака
	price := decimal.New(int64(rand.Intn(500000)+1000), -2)
	return AuctionWon{
		AuctionID:  uuid.NewString(),
		ProductID:  "product-" + uuid.NewString()[:8],
		SellerID:   randomUser("seller"),
		BuyerID:    randomUser("buyer"),
		FinalPrice: price.StringFixed(2),
		WonAt:      time.Now().UTC(),
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP("localhost:9092"),
		Topic:                  "auction.won",
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			won := generateAuctionWon()
			data, _ := json.Marshal(won)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(won.AuctionID), Value: data}); err != nil {
				log.Println("failed to publish auction:", err)
				continue
			}
			log.Printf("auction won: order=%s seller=%s buyer=%s price=%s",
				entities.OrderIDForAuction(won.AuctionID), won.SellerID, won.BuyerID, won.FinalPrice)
		case <-ctx.Done():
			return
		}
	}
}
