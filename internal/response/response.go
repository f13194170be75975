package response

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same envelope:
// {success, message, data?, error?}.

func Success(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// OK always carries the data key, so an absent document serializes as
// "data": null rather than disappearing from the body.
func OK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// StoreError reports a failed store call. The underlying error message is
// surfaced verbatim in the error field.
func StoreError(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
