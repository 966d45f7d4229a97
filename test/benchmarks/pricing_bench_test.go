package benchmarks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	redis_a "github.com/akozlova/marketplace-be/internal/adapters/redis_adapter"
	"github.com/akozlova/marketplace-be/internal/core/domain"
)

func benchLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func benchItems(n int) []domain.Item {
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		skuID := uuid.New()
		item := domain.Item{
			ID:    uuid.New(),
			SkuID: skuID,
			Sku: &domain.Sku{
				ID:        skuID,
				BasePrice: decimal.NewFromInt(int64(100 + i)),
			},
			Stock: domain.Stock{
				ID:     uuid.New(),
				Status: domain.StockValid,
			},
		}
		if i%3 == 0 {
			item.Discounts = []domain.ItemDiscount{
				{ID: uuid.New(), ItemID: item.ID, Type: domain.ItemDiscountByDefect, Percentage: 15},
				{ID: uuid.New(), ItemID: item.ID, Type: domain.ItemDiscountPromotion, Percentage: 30},
			}
		}
		items = append(items, item)
	}
	return items
}

func BenchmarkPostingCost(b *testing.B) {
	for _, size := range []int{1, 10, 100, 1000} {
		b.Run(fmt.Sprintf("items_%d", size), func(b *testing.B) {
			items := benchItems(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = domain.PostingCost(items)
			}
		})
	}
}

func BenchmarkDiscountedPrice(b *testing.B) {
	sku := &domain.Sku{
		ID:        uuid.New(),
		BasePrice: decimal.NewFromFloat(199.99),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sku.DiscountedPrice(1 + i%99)
	}
}

func BenchmarkSkuCache(b *testing.B) {
	mr := miniredis.RunT(b)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := redis_a.NewCache(client, time.Hour, benchLogger())
	ctx := context.Background()

	skus := make([]*domain.Sku, 100)
	for i := range skus {
		skus[i] = &domain.Sku{
			ID:          uuid.New(),
			BasePrice:   decimal.NewFromInt(int64(100 + i)),
			ActualPrice: decimal.NewFromInt(int64(90 + i)),
		}
	}

	b.Run("Set", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sku := skus[i%len(skus)]
			key := redis_a.BuildKey(redis_a.PrefixSku, sku.ID.String())
			_ = cache.SetWithTTL(ctx, key, sku, time.Minute)
		}
	})

	b.Run("Get", func(b *testing.B) {
		for _, sku := range skus {
			key := redis_a.BuildKey(redis_a.PrefixSku, sku.ID.String())
			_ = cache.SetWithTTL(ctx, key, sku, time.Minute)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sku := skus[i%len(skus)]
			key := redis_a.BuildKey(redis_a.PrefixSku, sku.ID.String())
			var dest domain.Sku
			_ = cache.Get(ctx, key, &dest)
		}
	})
}
