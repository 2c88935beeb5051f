package catalogController

import (
	"learnhub/catalog"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

type CatalogController struct {
	catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{catalog: cat}
}

func (h *CatalogController) Courses(c *fiber.Ctx) error {
	filter := c.Locals("validatedFilter").(catalog.CourseFilter)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", h.catalog.Courses(filter))
}

// GroupedCourses returns the filtered courses bucketed by category.
func (h *CatalogController) GroupedCourses(c *fiber.Ctx) error {
	filter := c.Locals("validatedFilter").(catalog.CourseFilter)
	groups := catalog.GroupByCategory(h.catalog.Courses(filter))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", groups)
}

func (h *CatalogController) Course(c *fiber.Ctx) error {
	course, err := h.catalog.CourseByID(c.Locals("courseID").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	data := fiber.Map{"course": course}
	if exam, _, err := h.catalog.ExamForCourse(course.ID); err == nil {
		data["exam"] = exam.Info()
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", data)
}

func (h *CatalogController) Categories(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", fiber.Map{
		"categories": h.catalog.Categories(),
		"levels":     h.catalog.Levels(),
	})
}

func (h *CatalogController) Exams(c *fiber.Ctx) error {
	exams := h.catalog.Exams()
	infos := make([]models.ExamInfo, 0, len(exams))
	for _, e := range exams {
		infos = append(infos, e.Info())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched successfully.", infos)
}

func (h *CatalogController) Reading(c *fiber.Ctx) error {
	category := c.Locals("validatedCategory").(string)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reading fetched successfully.", fiber.Map{
		"categories": h.catalog.ReadingCategories(),
		"items":      h.catalog.Reading(category),
	})
}

func (h *CatalogController) Jobs(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully.", h.catalog.Jobs())
}

func (h *CatalogController) Stats(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully.", h.catalog.Stats())
}
