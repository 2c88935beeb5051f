package examController

import (
	"learnhub/catalog"
	"learnhub/middleware"
	"learnhub/services/examsession"
	"learnhub/services/results"
	examValidator "learnhub/validators/exam"

	"github.com/gofiber/fiber/v2"
)

type ExamController struct {
	catalog  *catalog.Catalog
	sessions *examsession.Manager
	results  *results.Ledger
}

func NewExamController(cat *catalog.Catalog, sessions *examsession.Manager, results *results.Ledger) *ExamController {
	return &ExamController{catalog: cat, sessions: sessions, results: results}
}

func (h *ExamController) open(c *fiber.Ctx) (*examsession.Session, error) {
	return h.sessions.Open(c.Locals("courseID").(string))
}

func (h *ExamController) snapshot(c *fiber.Ctx, status int, message string, s *examsession.Session) error {
	return middleware.JsonResponse(c, status, true, message, s.Snapshot(c.UserContext()))
}

// Session returns the current state of the course exam, opening a fresh
// session when none exists.
func (h *ExamController) Session(c *fiber.Ctx) error {
	s, err := h.open(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return h.snapshot(c, fiber.StatusOK, "Exam fetched successfully.", s)
}

func (h *ExamController) Start(c *fiber.Ctx) error {
	s, err := h.open(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := s.Start(); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return h.snapshot(c, fiber.StatusOK, "Exam started.", s)
}

func (h *ExamController) Answer(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAnswer").(*examValidator.AnswerRequest)
	s, err := h.open(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := s.Select(reqData.QuestionID, *reqData.Option); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return h.snapshot(c, fiber.StatusOK, "Answer saved.", s)
}

func (h *ExamController) Navigate(c *fiber.Ctx) error {
	reqData := c.Locals("validatedNavigate").(*examValidator.NavigateRequest)
	s, err := h.open(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	switch reqData.Direction {
	case examValidator.DirectionNext:
		err = s.Next()
	case examValidator.DirectionPrevious:
		err = s.Previous()
	case examValidator.DirectionJump:
		err = s.Jump(*reqData.Index)
	}
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return h.snapshot(c, fiber.StatusOK, "Question changed.", s)
}

func (h *ExamController) Submit(c *fiber.Ctx) error {
	s, err := h.open(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if _, err := s.Submit(c.UserContext()); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return h.snapshot(c, fiber.StatusOK, "Exam submitted.", s)
}

func (h *ExamController) Retake(c *fiber.Ctx) error {
	s, err := h.open(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := s.Retake(c.UserContext()); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return h.snapshot(c, fiber.StatusOK, "Exam reset for retake.", s)
}

// Results lists every recorded attempt at the course exam.
func (h *ExamController) Results(c *fiber.Ctx) error {
	exam, _, err := h.catalog.ExamForCourse(c.Locals("courseID").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	ctx := c.UserContext()
	if _, err := h.results.List(ctx); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	data := fiber.Map{
		"exam":       exam.Info(),
		"attempts":   h.results.Attempts(ctx, exam.ID),
		"best_score": h.results.BestScore(ctx, exam.ID),
		"has_passed": h.results.HasPassed(ctx, exam.ID),
		"latest":     nil,
	}
	if latest, ok := h.results.Latest(ctx, exam.ID); ok {
		data["latest"] = latest
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully.", data)
}
