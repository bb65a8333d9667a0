package service_test

import (
	"bestevents/infras/otel/mocks"
	clientMocks "bestevents/internal/domains/client/mocks"
	"bestevents/internal/domains/client/model"
	"bestevents/internal/domains/client/model/dto"
	"bestevents/internal/domains/client/service"
	gDto "bestevents/shared/dto"
	"bestevents/shared/failure"
	gModel "bestevents/shared/model"
	gRepo "bestevents/shared/repository"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func booking() model.Client {
	return model.Client{
		ClientID: 1,
		Type:     gModel.EventTypeWedding,
		Date:     "2024-06-01",
		Time:     "14:00",
		Duration: 6,
		Venue:    "Venue A",
	}
}

func TestClientService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clientMocks.NewMockClient(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	req := dto.CreateClientRequest{
		Type:     gModel.EventTypeCorporate,
		Date:     "2024-09-10",
		Time:     "09:30",
		Duration: 8,
		Venue:    "Venue C",
	}

	tests := []struct {
		name      string
		req       dto.CreateClientRequest
		setupMock func()
		wantErr   func(error) bool
	}{
		{
			name: "successful creation",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, build func(int) model.Client) (int, model.Client, error) {
						return 4, build(4), nil
					})
			},
		},
		{
			name:      "invalid time",
			req:       dto.CreateClientRequest{Type: gModel.EventTypeOther, Date: "2024-09-10", Time: "25:00", Duration: 1, Venue: "Venue A"},
			setupMock: func() {},
			wantErr:   failure.IsValidation,
		},
		{
			name: "persist failure",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(0, model.Client{}, failure.Unavailable(errors.New("disk full")))
			},
			wantErr: failure.IsUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 4, res.ClientID)
			assert.Equal(t, "Corporate", res.TypeLabel)
			assert.Equal(t, "Venue C", res.Venue)
		})
	}
}

func TestClientService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clientMocks.NewMockClient(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Update(gomock.Any(), 1, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, mutate func(*model.Client) error) (model.Client, error) {
			stored := booking()
			err := mutate(&stored)

			return stored, err
		})
	mockRepo.EXPECT().Update(gomock.Any(), 99, gomock.Any()).Return(model.Client{}, failure.NotFoundKey(model.EntityName, 99))

	res, err := svc.Update(context.Background(), dto.UpdateClientRequest{Time: strPtr("16:15")}, 1)
	require.NoError(t, err)
	assert.Equal(t, "16:15", res.Time)
	assert.Equal(t, "2024-06-01", res.Date)
	assert.Equal(t, "Venue A", res.Venue)

	_, err = svc.Update(context.Background(), dto.UpdateClientRequest{Venue: strPtr("Venue B")}, 99)
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.Update(context.Background(), dto.UpdateClientRequest{}, 1)
	assert.ErrorIs(t, err, failure.EmptyUpdateRequest)

	_, err = svc.Update(context.Background(), dto.UpdateClientRequest{Date: strPtr("tomorrow")}, 1)
	assert.True(t, failure.IsValidation(err))
}

func TestClientService_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clientMocks.NewMockClient(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), 1).Return(booking(), nil)
	mockRepo.EXPECT().Remove(gomock.Any(), 1).Return(nil)
	mockRepo.EXPECT().Remove(gomock.Any(), 5).Return(failure.NotFoundKey(model.EntityName, 5))

	res, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Wedding", res.TypeLabel)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.True(t, failure.IsNotFound(svc.Delete(context.Background(), 5)))
}

func TestClientService_GetAllAndTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clientMocks.NewMockClient(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	second := booking()
	second.ClientID = 2
	second.Venue = "Venue B"

	entries := []gRepo.Entry[model.Client]{{Key: 1, Record: booking()}, {Key: 2, Record: second}}
	mockRepo.EXPECT().ListAll(gomock.Any()).Return(entries).Times(2)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 1, SortDir: gDto.SortDirDesc})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	require.Len(t, res.Clients, 1)
	assert.Equal(t, 2, res.Clients[0].ClientID)

	table := svc.Table(context.Background())
	assert.Equal(t, "Clients", table.Title)
	assert.Len(t, table.Rows, 2)
}
