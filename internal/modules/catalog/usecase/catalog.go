package usecase

import (
	"context"

	"roadmap/internal/modules/catalog/domain"
	"roadmap/internal/modules/catalog/dto"
	catalogin "roadmap/internal/modules/catalog/port/in"
	"roadmap/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListStages(ctx context.Context) ([]dto.StageOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	stages := c.Stages()
	out := make([]dto.StageOutput, 0, len(stages))
	for _, stage := range stages {
		out = append(out, toStageOutput(stage))
	}
	return out, nil
}

func (i *Interactor) GetStage(ctx context.Context, id int) (dto.StageOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.StageOutput{}, err
	}
	stage, err := c.Stage(id)
	if err != nil {
		return dto.StageOutput{}, err
	}
	return toStageOutput(stage), nil
}

func (i *Interactor) FindResource(ctx context.Context, stageID int, resourceID string) (dto.ResourceOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.ResourceOutput{}, err
	}
	_, res, err := c.FindResource(stageID, resourceID)
	if err != nil {
		return dto.ResourceOutput{}, err
	}
	return toResourceOutput(res), nil
}

func (i *Interactor) Summary(ctx context.Context) (dto.CatalogSummaryOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.CatalogSummaryOutput{}, err
	}
	return dto.CatalogSummaryOutput{
		StageCount:        c.Len(),
		TotalResources:    c.TotalResources(),
		ResourcesPerStage: c.ResourcesPerStage(),
		StageNames:        c.StageNames(),
	}, nil
}

func toStageOutput(stage domain.Stage) dto.StageOutput {
	resources := make([]dto.ResourceOutput, 0, len(stage.Resources))
	for _, r := range stage.Resources {
		resources = append(resources, toResourceOutput(r))
	}
	return dto.StageOutput{
		ID:              stage.ID,
		Title:           stage.Title,
		Description:     stage.Description,
		Icon:            stage.Icon,
		Color:           stage.Color,
		BackgroundImage: stage.BackgroundImage,
		Resources:       resources,
	}
}

func toResourceOutput(r domain.Resource) dto.ResourceOutput {
	return dto.ResourceOutput{ID: r.ID, Name: r.Name, URL: r.URL, Type: string(r.Type)}
}
