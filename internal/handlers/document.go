package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/legalbridge/legalbridge/internal/services"
	"github.com/legalbridge/legalbridge/internal/storage"
	"github.com/legalbridge/legalbridge/internal/utils"
)

// DocumentHandler handles process document routes and signed file streaming
type DocumentHandler struct {
	DB     *gorm.DB
	Store  storage.BlobStore
	Signer *storage.URLSigner
	Logger *slog.Logger
}

// ListDocuments handles GET /api/processes/:processKey/documents
// @Summary List documents
// @Description List document metadata for an owned process, newest first
// @Tags Documents
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Success 200 {array} models.ProcessDocument
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey}/documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	process, _, err := loadOwnedProcess(c, h.DB)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	docs, err := services.ListDocuments(h.DB, process.ID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listDocuments")
	}

	return c.Status(fiber.StatusOK).JSON(docs)
}

// UploadDocument handles POST /api/processes/:processKey/documents
// @Summary Upload a document
// @Description Multipart upload, max 10MB, PDF/JPEG/PNG/DOC/DOCX only
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param processKey path string true "Process key"
// @Param file formData file true "Document file"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey}/documents [post]
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	process, userID, err := loadOwnedProcess(c, h.DB)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "Multipart field \"file\" is required", fiber.StatusBadRequest, "uploadDocument")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Failed to read upload: %v", err), fiber.StatusBadRequest, "uploadDocument")
	}
	defer file.Close()

	doc, err := services.UploadDocument(c.Context(), h.DB, h.Store, h.Logger, process, &services.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
		UploadedBy:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "uploadDocument")
		case errors.Is(err, services.ErrPartialFailure):
			return utils.PartialFailureResponse(c, err.Error())
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "uploadDocument")
	}

	return utils.MutationSuccessResponse(c, doc)
}

// DeleteDocument handles DELETE /api/processes/:processKey/documents/:id
// @Summary Delete a document
// @Description Remove the stored blob, then the metadata row
// @Tags Documents
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Param id path string true "Document id"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey}/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	process, _, err := loadOwnedProcess(c, h.DB)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	err = services.DeleteDocument(c.Context(), h.DB, h.Store, h.Logger, process.ID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, fmt.Sprintf("Document '%s' not found", c.Params("id")))
		case errors.Is(err, services.ErrPartialFailure):
			return utils.PartialFailureResponse(c, err.Error())
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteDocument")
	}

	return utils.MutationSuccessResponse(c, nil)
}

// GetDocumentURL handles GET /api/processes/:processKey/documents/:id/url
// @Summary Get a signed download URL
// @Description Time-limited URL for viewing a document without a session
// @Tags Documents
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Param id path string true "Document id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey}/documents/{id}/url [get]
func (h *DocumentHandler) GetDocumentURL(c *fiber.Ctx) error {
	process, _, err := loadOwnedProcess(c, h.DB)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	doc, err := services.GetDocument(h.DB, process.ID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Document '%s' not found", c.Params("id")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getDocumentURL")
	}

	token, err := h.Signer.Sign(doc.FilePath, doc.FileType, doc.Name)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getDocumentURL")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": "/files/" + token,
	})
}

// ServeFile handles GET /files/:token
// @Summary Stream a document blob
// @Description Stream the blob referenced by a signed, unexpired token
// @Tags Documents
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} binary
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /files/{token} [get]
func (h *DocumentHandler) ServeFile(c *fiber.Ctx) error {
	claims, err := h.Signer.Verify(c.Params("token"))
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "serveFile")
	}

	blob, err := h.Store.Open(c.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFoundResponse(c, "File not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "serveFile")
	}
	defer blob.Close()

	data, err := io.ReadAll(blob)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "serveFile")
	}

	c.Set(fiber.HeaderContentType, claims.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", claims.FileName))
	return c.Status(fiber.StatusOK).Send(data)
}
