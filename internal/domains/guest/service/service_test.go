package service_test

import (
	"bestevents/infras/otel/mocks"
	guestMocks "bestevents/internal/domains/guest/mocks"
	"bestevents/internal/domains/guest/model"
	"bestevents/internal/domains/guest/model/dto"
	"bestevents/internal/domains/guest/service"
	gDto "bestevents/shared/dto"
	"bestevents/shared/failure"
	gRepo "bestevents/shared/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestGuestService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())
	ctx := context.Background()

	stored := model.Guest{GuestID: 1, FirstName: "Alan", LastName: "Turing", ContactDetails: "555-0199"}

	t.Run("create", func(t *testing.T) {
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, build func(int) model.Guest) (int, model.Guest, error) {
				return 2, build(2), nil
			})

		res, err := svc.Create(ctx, dto.CreateGuestRequest{FirstName: "Joan", LastName: "Clarke", ContactDetails: "joan@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.GuestID)
		assert.Equal(t, "Clarke", res.LastName)
		assert.NotEmpty(t, res.CreatedAt)
	})

	t.Run("create rejects missing fields", func(t *testing.T) {
		_, err := svc.Create(ctx, dto.CreateGuestRequest{FirstName: "Joan"})
		assert.True(t, failure.IsValidation(err))
	})

	t.Run("update changes only supplied fields", func(t *testing.T) {
		mockRepo.EXPECT().Update(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, mutate func(*model.Guest) error) (model.Guest, error) {
				guest := stored
				err := mutate(&guest)

				return guest, err
			})

		res, err := svc.Update(ctx, dto.UpdateGuestRequest{FirstName: strPtr("Alan M.")}, 1)
		require.NoError(t, err)
		assert.Equal(t, "Alan M.", res.FirstName)
		assert.Equal(t, "Turing", res.LastName)
		assert.Equal(t, "555-0199", res.ContactDetails)
	})

	t.Run("update of absent guest", func(t *testing.T) {
		mockRepo.EXPECT().Update(gomock.Any(), 99, gomock.Any()).Return(model.Guest{}, failure.NotFoundKey(model.EntityName, 99))

		_, err := svc.Update(ctx, dto.UpdateGuestRequest{LastName: strPtr("X")}, 99)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("get and delete", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), 1).Return(stored, nil)
		mockRepo.EXPECT().Remove(gomock.Any(), 1).Return(nil)
		mockRepo.EXPECT().Remove(gomock.Any(), 1).Return(failure.NotFoundKey(model.EntityName, 1))

		res, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Alan", res.FirstName)

		require.NoError(t, svc.Delete(ctx, 1))
		assert.True(t, failure.IsNotFound(svc.Delete(ctx, 1)))
	})

	t.Run("list and table", func(t *testing.T) {
		mockRepo.EXPECT().ListAll(gomock.Any()).Return([]gRepo.Entry[model.Guest]{{Key: 1, Record: stored}}).Times(2)

		list, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalPage)
		require.Len(t, list.Guests, 1)

		table := svc.Table(ctx)
		assert.Equal(t, "Guests", table.Title)
		assert.Equal(t, model.Columns, table.Columns)
	})
}

func TestGuestService_Describe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	tracer := mocks.NewOtel()
	svc := service.New(mockRepo, tracer)

	mockRepo.EXPECT().Get(gomock.Any(), 1).Return(model.Guest{GuestID: 1, FirstName: "Ada", LastName: "Lovelace", ContactDetails: "ada@example.com"}, nil)
	mockRepo.EXPECT().Get(gomock.Any(), 2).Return(model.Guest{}, failure.NotFoundKey(model.EntityName, 2))

	out, err := svc.Describe(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Guest ID: 1\nFirst Name: Ada\nLast Name: Lovelace\nContact Details: ada@example.com", out)

	_, err = svc.Describe(context.Background(), 2)
	assert.True(t, failure.IsNotFound(err))

	assert.Equal(t, []string{"service.Guest.Describe", "service.Guest.Describe"}, tracer.Spans())
	assert.Equal(t, []error{err}, tracer.Errors())
}

func TestGuestService_TableOpensScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	tracer := mocks.NewOtel()
	svc := service.New(mockRepo, tracer)

	mockRepo.EXPECT().ListAll(gomock.Any()).Return(nil)

	table := svc.Table(context.Background())
	assert.Empty(t, table.Rows)
	assert.Equal(t, []string{"service.Guest.Table"}, tracer.Spans())
}
