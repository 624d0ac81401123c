package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"genai-studio-be/internal/constant"
	"genai-studio-be/internal/dto"
	"genai-studio-be/internal/entity"
	"genai-studio-be/internal/pkg/apperror"
	"genai-studio-be/internal/pkg/logger"
	"genai-studio-be/internal/repository/specification"
	"genai-studio-be/internal/repository/unitofwork"
	"genai-studio-be/pkg/imagegen"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type IImageGenService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]dto.ImageHistoryItem, error)
}

type imageGenService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   imagegen.Provider
	logger     logger.ILogger
	now        func() time.Time
}

func NewImageGenService(uowFactory unitofwork.RepositoryFactory, provider imagegen.Provider, logger logger.ILogger) IImageGenService {
	return &imageGenService{
		uowFactory: uowFactory,
		provider:   provider,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type imageJob struct {
	userId      uuid.UUID
	prompt      string
	aspectRatio entity.AspectRatio
	width       int
	height      int
}

func (s *imageGenService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, apperror.BadRequest(constant.MsgImagePromptRequired)
	}
	if req.ImageCount < 0 || req.ImageCount > constant.ImageMaxCount {
		return nil, apperror.BadRequest(constant.MsgImageCountInvalid)
	}
	if !s.provider.Configured() {
		return nil, apperror.Internal(constant.MsgImageKeyMissing, errors.New("image api key is not configured"))
	}

	ratio, width, height := imagegen.ResolveDimensions(req.AspectRatio)
	job := imageJob{
		userId:      userId,
		prompt:      req.Prompt,
		aspectRatio: ratio,
		width:       width,
		height:      height,
	}

	if req.ImageCount <= 1 {
		image, err := s.generateOne(ctx, job)
		if err != nil {
			return nil, err
		}
		return &dto.GenerateImageResponse{ImageUrl: image.ImageUrl, ImageId: &image.Id}, nil
	}

	return s.generateMany(ctx, job, req.ImageCount)
}

// generateMany runs count independent generations and joins them. A failed
// item is reported in place; the call fails only when every item failed.
func (s *imageGenService) generateMany(ctx context.Context, job imageJob, count int) (*dto.GenerateImageResponse, error) {
	items := make([]dto.GeneratedImageItem, count)
	errs := make([]error, count)

	var g errgroup.Group
	for i := 0; i < count; i++ {
		g.Go(func() error {
			image, err := s.generateOne(ctx, job)
			if err != nil {
				errs[i] = err
				items[i] = dto.GeneratedImageItem{Message: clientMessage(err)}
				return nil
			}
			items[i] = dto.GeneratedImageItem{ImageUrl: image.ImageUrl, ImageId: &image.Id}
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err == nil {
			return &dto.GenerateImageResponse{Images: items}, nil
		}
	}
	return nil, errs[0]
}

func (s *imageGenService) generateOne(ctx context.Context, job imageJob) (*entity.GeneratedImage, error) {
	params := entity.ImageParameters{
		Model:             s.provider.Model(),
		Width:             job.width,
		Height:            job.height,
		NumInferenceSteps: constant.ImageInferenceSteps,
		GuidanceScale:     constant.ImageGuidanceScale,
	}

	result, err := s.provider.Generate(ctx, imagegen.Request{
		Prompt:            job.prompt,
		Width:             params.Width,
		Height:            params.Height,
		NumInferenceSteps: params.NumInferenceSteps,
		GuidanceScale:     params.GuidanceScale,
	})
	if err != nil {
		s.logger.Error("IMAGEGEN", "Image generation request failed", map[string]interface{}{
			"model": params.Model,
			"error": err,
		})
		return nil, apperror.Upstream(imagegen.ClassifyError(err), err)
	}

	image := &entity.GeneratedImage{
		Id:          uuid.New(),
		UserId:      job.userId,
		Prompt:      job.prompt,
		ImageUrl:    result.DataURL(),
		AspectRatio: job.aspectRatio,
		Parameters:  params,
		Timestamp:   s.now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.GeneratedImageRepository().Create(ctx, image); err != nil {
		return nil, apperror.Internal(constant.MsgImageSaveFailed, err)
	}
	return image, nil
}

func (s *imageGenService) History(ctx context.Context, userId uuid.UUID) ([]dto.ImageHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	images, err := uow.GeneratedImageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Limit{Limit: constant.ImageHistoryLimit},
	)
	if err != nil {
		return nil, apperror.Internal(constant.MsgImageHistoryFailed, err)
	}

	res := make([]dto.ImageHistoryItem, 0, len(images))
	for _, image := range images {
		res = append(res, dto.ImageHistoryItem{
			Id:          image.Id,
			Prompt:      image.Prompt,
			ImageUrl:    image.ImageUrl,
			AspectRatio: string(image.AspectRatio),
			Timestamp:   image.Timestamp,
		})
	}
	return res, nil
}

func clientMessage(err error) string {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
