package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifeplan-backend/internal/domain"
	"github.com/simaogato/lifeplan-backend/internal/platform/config"
)

func sampleLedger() *domain.PropertyLedger {
	return domain.NewPropertyLedger(domain.PropertyHolding{
		ID:            uuid.MustParse("6f1c2c0e-5d1b-4f0e-9a57-0b4f3b8a9c11"),
		Name:          "Apartment",
		CurrentValue:  decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(6),
		LoanBalance:   decimal.NewFromInt(3),
		Strategy:      domain.StrategySellBeforeRetirement,
		DisposalAge:   60,
	})
}

func encodedHoldings(t *testing.T, ledger *domain.PropertyLedger) []interface{} {
	t.Helper()
	var values []interface{}
	for _, h := range ledger.Holdings() {
		data, err := json.Marshal(h)
		require.NoError(t, err)
		values = append(values, string(data))
	}
	return values
}

func TestLedgerRepository_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewLedgerRepository(client, 24*time.Hour)
	sessionID := uuid.New()
	key := "lifeplan:ledger:" + sessionID.String()

	ledger := sampleLedger()

	mock.ExpectTxPipeline()
	mock.ExpectDel(key).SetVal(0)
	mock.ExpectRPush(key, encodedHoldings(t, ledger)...).SetVal(1)
	mock.ExpectExpire(key, 24*time.Hour).SetVal(true)
	mock.ExpectTxPipelineExec()

	require.NoError(t, repo.Save(context.Background(), sessionID, ledger))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_SaveEmptyClearsKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewLedgerRepository(client, time.Hour)
	sessionID := uuid.New()

	mock.ExpectTxPipeline()
	mock.ExpectDel("lifeplan:ledger:" + sessionID.String()).SetVal(0)
	mock.ExpectTxPipelineExec()

	require.NoError(t, repo.Save(context.Background(), sessionID, domain.NewPropertyLedger()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_Append(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewLedgerRepository(client, time.Hour)
	sessionID := uuid.New()
	key := "lifeplan:ledger:" + sessionID.String()

	holding := sampleLedger().Holdings()[0]
	data, err := json.Marshal(holding)
	require.NoError(t, err)

	mock.ExpectTxPipeline()
	mock.ExpectRPush(key, string(data)).SetVal(3)
	mock.ExpectExpire(key, time.Hour).SetVal(true)
	mock.ExpectTxPipelineExec()

	count, err := repo.Append(context.Background(), sessionID, holding)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_AppendRejectsInvalidHolding(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewLedgerRepository(client, time.Hour)

	_, err := repo.Append(context.Background(), uuid.New(), domain.PropertyHolding{ID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewLedgerRepository(client, time.Hour)
	sessionID := uuid.New()

	values := encodedHoldings(t, sampleLedger())
	mock.ExpectLRange("lifeplan:ledger:"+sessionID.String(), 0, -1).SetVal([]string{values[0].(string)})

	got, err := repo.Get(context.Background(), sessionID)

	require.NoError(t, err)
	holdings := got.Holdings()
	require.Len(t, holdings, 1)
	assert.Equal(t, "Apartment", holdings[0].Name)
	assert.Equal(t, domain.StrategySellBeforeRetirement, holdings[0].Strategy)
	assert.True(t, holdings[0].LoanBalance.Equal(decimal.NewFromInt(3)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_GetMissing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewLedgerRepository(client, time.Hour)
	sessionID := uuid.New()

	mock.ExpectLRange("lifeplan:ledger:"+sessionID.String(), 0, -1).SetVal([]string{})

	_, err := repo.Get(context.Background(), sessionID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_Errors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewLedgerRepository(client, time.Hour)
	sessionID := uuid.New()
	key := "lifeplan:ledger:" + sessionID.String()

	t.Run("get fails", func(t *testing.T) {
		mock.ExpectLRange(key, 0, -1).SetErr(errors.New("connection refused"))

		_, err := repo.Get(context.Background(), sessionID)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("corrupt value", func(t *testing.T) {
		mock.ExpectLRange(key, 0, -1).SetVal([]string{"{not json"})

		_, err := repo.Get(context.Background(), sessionID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode ledger")
	})

	t.Run("append fails", func(t *testing.T) {
		holding := sampleLedger().Holdings()[0]
		data, err := json.Marshal(holding)
		require.NoError(t, err)

		mock.ExpectTxPipeline()
		mock.ExpectRPush(key, string(data)).SetErr(errors.New("OOM"))

		_, err = repo.Append(context.Background(), sessionID, holding)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to append holding")
	})
}

func TestNewClient_NotConfigured(t *testing.T) {
	client, err := NewClient(context.Background(), config.RedisConfig{})

	assert.NoError(t, err)
	assert.Nil(t, client)
}
