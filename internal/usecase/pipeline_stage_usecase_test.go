package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"proposal_forecasting/internal/domain/entities"
	mock_interfaces "proposal_forecasting/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestPipelineStageUseCase_ListStages(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		uc := NewPipelineStageUseCase(nil)
		_, err := uc.ListStages(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return(nil, errors.New("db"))

		_, err := uc.ListStages(context.Background(), " u-1 ")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPipelineStageUseCase_CreateStage(t *testing.T) {
	validation := []struct {
		name string
		in   CreatePipelineStageInput
		want error
	}{
		{name: "blank name", in: CreatePipelineStageInput{Name: "  ", Probability: 10}, want: ErrInvalidStageName},
		{name: "probability above 100", in: CreatePipelineStageInput{Name: "Demo", Probability: 101}, want: ErrInvalidStageProbability},
		{name: "negative probability", in: CreatePipelineStageInput{Name: "Demo", Probability: -1}, want: ErrInvalidStageProbability},
		{name: "negative order", in: CreatePipelineStageInput{Name: "Demo", Order: intPtr(-1)}, want: ErrInvalidStageOrder},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewPipelineStageUseCase(nil)
			_, err := uc.CreateStage(context.Background(), "u-1", tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("appends after last stage with default color", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return([]entities.PipelineStage{{ID: "a", Order: 0}, {ID: "b", Order: 4}}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PipelineStage{})).DoAndReturn(
			func(_ context.Context, s entities.PipelineStage) (entities.PipelineStage, error) {
				if s.ID == "" || s.UserID != "u-1" || s.Name != "Demo" || s.Order != 5 || s.Probability != 40 || s.Color != defaultStageColor {
					t.Fatalf("unexpected stage: %+v", s)
				}
				return s, nil
			})

		got, err := uc.CreateStage(context.Background(), "u-1", CreatePipelineStageInput{Name: " Demo ", Probability: 40})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Order != 5 {
			t.Fatalf("expected order 5, got %d", got.Order)
		}
	})

	t.Run("explicit order skips listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PipelineStage) (entities.PipelineStage, error) {
				return s, nil
			})

		got, err := uc.CreateStage(context.Background(), "u-1", CreatePipelineStageInput{Name: "Demo", Order: intPtr(2), Color: "#000000"})
		if err != nil || got.Order != 2 || got.Color != "#000000" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestPipelineStageUseCase_UpdateStage(t *testing.T) {
	owned := entities.PipelineStage{ID: "st-1", UserID: "u-1", Name: "Lead", Probability: 10}

	t.Run("invalid stage id", func(t *testing.T) {
		uc := NewPipelineStageUseCase(nil)
		_, err := uc.UpdateStage(context.Background(), "u-1", " ", entities.PipelineStageUpdate{})
		if !errors.Is(err, ErrInvalidStageID) {
			t.Fatalf("expected ErrInvalidStageID, got %v", err)
		}
	})

	t.Run("invalid probability", func(t *testing.T) {
		uc := NewPipelineStageUseCase(nil)
		_, err := uc.UpdateStage(context.Background(), "u-1", "st-1", entities.PipelineStageUpdate{Probability: intPtr(150)})
		if !errors.Is(err, ErrInvalidStageProbability) {
			t.Fatalf("expected ErrInvalidStageProbability, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		uc := NewPipelineStageUseCase(nil)
		_, err := uc.UpdateStage(context.Background(), "u-1", "st-1", entities.PipelineStageUpdate{Name: strPtr(" ")})
		if !errors.Is(err, ErrInvalidStageName) {
			t.Fatalf("expected ErrInvalidStageName, got %v", err)
		}
	})

	t.Run("stage of another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(owned, nil)

		_, err := uc.UpdateStage(context.Background(), "u-2", "st-1", entities.PipelineStageUpdate{Probability: intPtr(50)})
		if !errors.Is(err, ErrPipelineStageNotFound) {
			t.Fatalf("expected ErrPipelineStageNotFound, got %v", err)
		}
	})

	t.Run("missing stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-9").Return(entities.PipelineStage{}, nil)

		_, err := uc.UpdateStage(context.Background(), "u-1", "st-9", entities.PipelineStageUpdate{Probability: intPtr(50)})
		if !errors.Is(err, ErrPipelineStageNotFound) {
			t.Fatalf("expected ErrPipelineStageNotFound, got %v", err)
		}
	})

	t.Run("empty update returns current stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(owned, nil)

		got, err := uc.UpdateStage(context.Background(), "u-1", "st-1", entities.PipelineStageUpdate{})
		if err != nil || got.ID != "st-1" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("success trims name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(owned, nil)
		repo.EXPECT().Update(gomock.Any(), "st-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u entities.PipelineStageUpdate) (entities.PipelineStage, error) {
				if u.Name == nil || *u.Name != "Warm lead" {
					t.Fatalf("expected trimmed name, got %+v", u)
				}
				return u.Apply(owned), nil
			})

		got, err := uc.UpdateStage(context.Background(), "u-1", "st-1", entities.PipelineStageUpdate{Name: strPtr(" Warm lead ")})
		if err != nil || got.Name != "Warm lead" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(owned, nil)
		repo.EXPECT().Update(gomock.Any(), "st-1", gomock.Any()).Return(entities.PipelineStage{}, nil)

		_, err := uc.UpdateStage(context.Background(), "u-1", "st-1", entities.PipelineStageUpdate{Probability: intPtr(20)})
		if !errors.Is(err, ErrPipelineStageNotFound) {
			t.Fatalf("expected ErrPipelineStageNotFound, got %v", err)
		}
	})
}

func TestPipelineStageUseCase_DeleteStage(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.PipelineStage{ID: "st-1", UserID: "u-1"}, nil)

		if err := uc.DeleteStage(context.Background(), "u-2", "st-1"); !errors.Is(err, ErrPipelineStageNotFound) {
			t.Fatalf("expected ErrPipelineStageNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.PipelineStage{ID: "st-1", UserID: "u-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "st-1").Return(nil)

		if err := uc.DeleteStage(context.Background(), "u-1", "st-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPipelineStageUseCase_InitializeDefaultStages(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("existing stages are kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		existing := []entities.PipelineStage{{ID: "custom", UserID: "u-1", Name: "Custom"}}
		repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return(existing, nil)

		got, err := uc.InitializeDefaultStages(context.Background(), "u-1")
		if err != nil || len(got) != 1 || got[0].ID != "custom" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("creates the six defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)
		uc.now = func() time.Time { return now }

		defaults := entities.DefaultPipelineStages("u-1", now)
		gomock.InOrder(
			repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return(nil, nil),
			repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil).Times(6),
			repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return(defaults, nil),
		)

		got, err := uc.InitializeDefaultStages(context.Background(), "u-1")
		if err != nil || len(got) != 6 {
			t.Fatalf("unexpected result: %d stages err=%v", len(got), err)
		}
	})

	t.Run("create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPipelineStageRepository(ctrl)
		uc := NewPipelineStageUseCase(repo)

		repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return(nil, nil)
		repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, errors.New("db"))

		if _, err := uc.InitializeDefaultStages(context.Background(), "u-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
