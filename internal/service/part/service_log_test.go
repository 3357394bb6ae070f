package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dimasmith/printtables/internal/model"
	"github.com/dimasmith/printtables/internal/service/part/mocks"
	"github.com/dimasmith/printtables/platform/logger"
)

// Not parallel: the observer replaces the process logger.
func TestServicePartLogSeverity(t *testing.T) {
	partID := uuid.New()

	type testCase struct {
		name       string
		setup      func(repo *mocks.MockPartRepository)
		wantErr    error
		wantErrors int
	}

	tests := []testCase{
		{
			name: "storage failure is logged once at error",
			setup: func(repo *mocks.MockPartRepository) {
				repo.On("PartByID", mock.Anything, partID).
					Return((*model.Part)(nil), errors.New("db read failed")).
					Once()
			},
			wantErr:    model.ErrGeneral,
			wantErrors: 1,
		},
		{
			name: "not found is not logged as an error",
			setup: func(repo *mocks.MockPartRepository) {
				repo.On("PartByID", mock.Anything, partID).
					Return((*model.Part)(nil), nil).
					Once()
			},
			wantErr:    model.ErrPartNotFound,
			wantErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			t.Cleanup(logger.Replace(core))

			repo := mocks.NewMockPartRepository(t)
			tt.setup(repo)

			_, err := NewInventoryService(repo, 0, 0).Part(context.Background(), partID)
			assert.ErrorIs(t, err, tt.wantErr)

			atOrAboveError := logs.Filter(func(e observer.LoggedEntry) bool {
				return e.Level >= zapcore.ErrorLevel
			})
			assert.Equal(t, tt.wantErrors, atOrAboveError.Len())
			assert.Equal(t, tt.wantErrors, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
		})
	}
}
