package impl

import (
	"context"
	"testing"
	"time"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	mockRepo "brewhub/internal/mocks/repository"
	"brewhub/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromotionService_CreatePromotion_Validation(t *testing.T) {
	mockPromotionRepo := mockRepo.NewMockPromotionRepository(t)
	service := NewPromotionService(mockPromotionRepo)

	ctx := context.Background()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -7)

	cases := []struct {
		name  string
		input usecase.PromotionInput
	}{
		{"missing name", usecase.PromotionInput{DiscountType: "PERCENT", DiscountValue: decimal.RequireFromString("10")}},
		{"bad discount type", usecase.PromotionInput{Name: "x", DiscountType: "BOGO", DiscountValue: decimal.RequireFromString("10")}},
		{"non-positive value", usecase.PromotionInput{Name: "x", DiscountType: "FIXED", DiscountValue: decimal.Zero}},
		{"end before start", usecase.PromotionInput{Name: "x", DiscountType: "FIXED", DiscountValue: decimal.RequireFromString("1"), StartDate: &start, EndDate: &end}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreatePromotion(ctx, tc.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPromotionService_CreatePromotion(t *testing.T) {
	mockPromotionRepo := mockRepo.NewMockPromotionRepository(t)
	service := NewPromotionService(mockPromotionRepo)

	ctx := context.Background()
	mockPromotionRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Promotion) bool {
		return p.DiscountType == entity.DiscountTypePercent && p.IsGeneral()
	})).Return(nil)

	promotion, err := service.CreatePromotion(ctx, usecase.PromotionInput{
		Name:          "Weekend Special",
		DiscountType:  "PERCENT",
		DiscountValue: decimal.RequireFromString("15"),
	})
	require.NoError(t, err)
	assert.True(t, promotion.IsGeneral())
}

func TestPromotionService_ListActivePromotions(t *testing.T) {
	mockPromotionRepo := mockRepo.NewMockPromotionRepository(t)
	service := NewPromotionService(mockPromotionRepo)

	ctx := context.Background()
	active := []*entity.Promotion{{Name: "Weekend Special"}}
	mockPromotionRepo.On("ListActiveGeneral", ctx, mock.AnythingOfType("time.Time")).Return(active, nil)

	got, err := service.ListActivePromotions(ctx)
	require.NoError(t, err)
	assert.Equal(t, active, got)
}
