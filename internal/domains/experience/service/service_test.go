package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wander/config"
	"wander/infras/otel/mocks"
	s3Mocks "wander/infras/s3/mocks"
	bookingMocks "wander/internal/domains/booking/mocks"
	expMocks "wander/internal/domains/experience/mocks"
	"wander/internal/domains/experience/model"
	"wander/internal/domains/experience/model/dto"
	"wander/internal/domains/experience/service"
	cacheMocks "wander/shared/cache/mocks"
	"wander/shared/constant"
	"wander/shared/failure"
	gModel "wander/shared/model"
	"wander/shared/timezone"
)

type experienceFixture struct {
	repo        *expMocks.MockExperience
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
	svc         service.Experience
}

func newExperienceFixture(ctrl *gomock.Controller) *experienceFixture {
	f := &experienceFixture{
		repo:        expMocks.NewMockExperience(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "wander-assets"

	f.svc = service.New(f.repo, f.bookingRepo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func testExperience() model.Experience {
	return model.Experience{
		ID:          "exp-1",
		Title:       "Volcano Sunrise Trek",
		Location:    "Mount Batur",
		MaxCapacity: 12,
		PriceAmount: 150000,
		Currency:    "USD",
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

func TestExperienceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newExperienceFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateExperienceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateExperienceRequest{
				Title:       "Volcano Sunrise Trek",
				Location:    "Mount Batur",
				MaxCapacity: 12,
				PriceAmount: 150000,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateExperienceRequest{
				Title:       "Volcano Sunrise Trek",
				MaxCapacity: 12,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExperienceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newExperienceFixture(ctrl)

	t.Run("cache hit", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.Get(context.Background(), "exp-1")

		assert.NoError(t, err)
	})

	t.Run("cache miss, successful get from db", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testExperience(), nil)

		res, err := f.svc.Get(context.Background(), "exp-1")

		assert.NoError(t, err)
		assert.Equal(t, "exp-1", res.ID)
		assert.Equal(t, 12, res.MaxCapacity)
	})

	t.Run("not found", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Experience{}, nil)

		_, err := f.svc.Get(context.Background(), "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestExperienceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newExperienceFixture(ctrl)

	capacity := func(n int) *int { return &n }

	tests := []struct {
		name      string
		req       dto.UpdateExperienceRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "updates the title",
			req:  dto.UpdateExperienceRequest{Title: "Volcano Sunset Trek"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testExperience(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "raising capacity needs no booking check",
			req:  dto.UpdateExperienceRequest{MaxCapacity: capacity(20)},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testExperience(), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "lowering capacity above the busiest future date succeeds",
			req:  dto.UpdateExperienceRequest{MaxCapacity: capacity(8)},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testExperience(), nil)

				f.bookingRepo.EXPECT().
					MaxDailyGuestsFrom(gomock.Any(), "exp-1", gomock.Any()).
					Return(6, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "lowering capacity below committed guests conflicts",
			req:  dto.UpdateExperienceRequest{MaxCapacity: capacity(5)},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testExperience(), nil)

				f.bookingRepo.EXPECT().
					MaxDailyGuestsFrom(gomock.Any(), "exp-1", gomock.Any()).
					Return(9, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "booking store unavailable during the check",
			req:  dto.UpdateExperienceRequest{MaxCapacity: capacity(5)},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testExperience(), nil)

				f.bookingRepo.EXPECT().
					MaxDailyGuestsFrom(gomock.Any(), "exp-1", gomock.Any()).
					Return(0, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "experience not found",
			req:  dto.UpdateExperienceRequest{Title: "Ghost"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Experience{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.Update(ctx, tt.req, "exp-1")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExperienceService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newExperienceFixture(ctrl)

	t.Run("deletes an existing experience", func(t *testing.T) {
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), "exp-1"))
	})

	t.Run("not found", func(t *testing.T) {
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
