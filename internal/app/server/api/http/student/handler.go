package student

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"studentdash/internal/domain/student"
)

type Handler struct {
	service    student.Servicer
	validator  *student.Validator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service student.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		validator:  student.NewValidator(),
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	students, err := h.service.List(ctx)
	if err != nil {
		return nil, toHTTP(err)
	}
	if students == nil {
		students = []student.Student{}
	}
	return &listOutput{Body: students}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	rec, err := h.decode(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.service.Create(ctx, rec)
	if err != nil {
		return nil, toHTTP(err)
	}
	return &output{Body: *created}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	rec, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, toHTTP(err)
	}
	return &output{Body: *rec}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	rec, err := h.decode(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.service.Update(ctx, input.ID, rec)
	if err != nil {
		return nil, toHTTP(err)
	}
	return &output{Body: *updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, toHTTP(err)
	}
	return nil, nil
}

// decode нормализует тело и проверяет поля формы
func (h *Handler) decode(body map[string]any) (student.Student, error) {
	rec, err := student.Normalize(body)
	if err != nil {
		return student.Student{}, huma.Error400BadRequest(err.Error())
	}
	if err := h.validator.Validate(rec); err != nil {
		return student.Student{}, huma.Error422UnprocessableEntity(err.Error())
	}
	return rec, nil
}

func toHTTP(err error) error {
	switch {
	case errors.Is(err, student.ErrNotFound):
		return huma.Error404NotFound("student not found")
	case errors.Is(err, student.ErrInvalidData):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
