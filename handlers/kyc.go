package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"fitbook/services/trainer"

	"github.com/gin-gonic/gin"
)

// KycHandler exposes trainer verification endpoints.
type KycHandler struct {
	Svc trainer.Service
}

// NewKycHandler constructs a KycHandler.
func NewKycHandler(svc trainer.Service) *KycHandler {
	return &KycHandler{Svc: svc}
}

// SubmitKyc accepts multipart document uploads: profileImage, idFront,
// idBack, certificate.
func (h *KycHandler) SubmitKyc(c *gin.Context) {
	sub := trainer.KycSubmission{}
	fields := []struct {
		name string
		dest **trainer.KycUpload
	}{
		{"profileImage", &sub.ProfileImage},
		{"idFront", &sub.IDFront},
		{"idBack", &sub.IDBack},
		{"certificate", &sub.Certificate},
	}
	for _, f := range fields {
		fh, err := c.FormFile(f.name)
		if err != nil {
			continue // missing documents are allowed; the reviewer decides
		}
		upload, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload", "details": err.Error()})
			return
		}
		*f.dest = upload
	}

	t, err := h.Svc.SubmitKyc(c.Request.Context(), c.Param("trainerId"), sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer": t})
}

// KycStatus returns the trainer's verification status.
func (h *KycHandler) KycStatus(c *gin.Context) {
	status, err := h.Svc.KycStatus(c.Request.Context(), c.Param("trainerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kycStatus": status})
}

// ReviewKyc records an approve/reject verdict.
func (h *KycHandler) ReviewKyc(c *gin.Context) {
	var input struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.ReviewKyc(c.Request.Context(), c.Param("trainerId"), input.Approve); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review recorded"})
}

// Specializations lists the coaching disciplines trainers can publish under.
func (h *KycHandler) Specializations(c *gin.Context) {
	specs, err := h.Svc.Specializations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specializations": specs})
}

func readUpload(fh *multipart.FileHeader) (*trainer.KycUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &trainer.KycUpload{Filename: fh.Filename, Data: data}, nil
}
