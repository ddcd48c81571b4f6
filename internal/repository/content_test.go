package repository

import (
	"context"
	"testing"

	"nhaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_FeesAreUniquePerTier(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))
	ctx := context.Background()

	fee, err := repo.FeeFor(ctx, models.MembershipTierGeneral)
	require.NoError(t, err)
	assert.Nil(t, fee)

	require.NoError(t, repo.SaveFee(ctx, &models.MembershipFee{MemberType: models.MembershipTierGeneral, Amount: 500}))
	err = repo.SaveFee(ctx, &models.MembershipFee{MemberType: models.MembershipTierGeneral, Amount: 700})
	assert.Equal(t, models.CodeConflict, models.ErrorCode(err))

	fee, err = repo.FeeFor(ctx, models.MembershipTierGeneral)
	require.NoError(t, err)
	require.NotNil(t, fee)
	assert.InDelta(t, 500, fee.Amount, 0.001)
}

func TestContentRepository_RankedListsAndDelete(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveTier(ctx, &models.DonationTier{Amount: 1000, Label: "Friend", Order: 2}))
	require.NoError(t, repo.SaveTier(ctx, &models.DonationTier{Amount: 500, Label: "Supporter", Order: 1}))
	tiers, err := repo.ListTiers(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, "Supporter", tiers[0].Label)

	bank := &models.BankDetail{BankName: "Nabil", AccountName: "NHAF", AccountNumber: "001"}
	require.NoError(t, repo.SaveBankDetail(ctx, bank))
	require.NoError(t, repo.DeleteBankDetail(ctx, bank.ID))
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(repo.DeleteBankDetail(ctx, bank.ID)))

	_, err = repo.GetTier(ctx, 999)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}
