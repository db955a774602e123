package handler

import (
	"event_manager/config"
	"event_manager/constants"
	"event_manager/helper"
	"event_manager/utils"
	"fmt"
	"net/url"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gofiber/fiber/v2"
)

// GenerateUploadSignature signs a direct-to-cloudinary upload for event
// cover images so the browser never sees the API secret.
func GenerateUploadSignature(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoOrganizerFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_PERMISSION, nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()

	signable := url.Values{}
	signable.Set("timestamp", fmt.Sprintf("%d", timestamp))
	if params.Folder != "" {
		signable.Set("folder", params.Folder)
	}
	if params.PublicID != "" {
		signable.Set("public_id", params.PublicID)
	}

	signature, err := api.SignParameters(signable, config.Config("CLOUDINARY_API_SECRET"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}
