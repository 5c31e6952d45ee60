package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// OnboardingHandler serves the three onboarding steps and the owner's
// completion, gate and combined views.
type OnboardingHandler struct {
	service ports.OnboardingService
}

func NewOnboardingHandler(service ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// SubmitPersonal handles POST /v1/onboarding/personal. The saved profile is
// returned with its id numbers masked.
//
// @Summary      Save the personal details step
// @Tags         onboarding
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        mobile        formData  string  true   "Ten digit mobile number"
// @Param        profileImage  formData  file    false  "Profile image"
// @Param        aadhaarFile   formData  file    false  "Aadhaar scan"
// @Param        panFile       formData  file    false  "PAN scan"
// @Param        resumeFile    formData  file    false  "Resume"
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/onboarding/personal [post]
func (h *OnboardingHandler) SubmitPersonal(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	values, files, cleanup, err := readForm(c, domain.SectionPersonal)
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := h.service.SubmitPersonal(c.Request().Context(), accountID, toPersonalInput(values), files)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p.Masked())
}

// SubmitExperience handles POST /v1/onboarding/experience.
//
// @Summary      Save the work experience step
// @Tags         onboarding
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        resumeStep2  formData  file  false  "Resume"
// @Success      200  {object}  domain.Experience
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/onboarding/experience [post]
func (h *OnboardingHandler) SubmitExperience(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	values, files, cleanup, err := readForm(c, domain.SectionExperience)
	if err != nil {
		return err
	}
	defer cleanup()

	e, err := h.service.SubmitExperience(c.Request().Context(), accountID, toExperienceInput(values), files)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// SubmitKYC handles POST /v1/onboarding/kyc. Bank details in the response are masked.
//
// @Summary      Save the bank and identity step
// @Tags         onboarding
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        aadhaarFront    formData  file  false  "Aadhaar front"
// @Param        aadhaarBack     formData  file  false  "Aadhaar back"
// @Param        panCardUpload   formData  file  false  "PAN card"
// @Param        passbookUpload  formData  file  false  "Bank passbook"
// @Success      200  {object}  domain.KYC
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/onboarding/kyc [post]
func (h *OnboardingHandler) SubmitKYC(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	values, files, cleanup, err := readForm(c, domain.SectionKYC)
	if err != nil {
		return err
	}
	defer cleanup()

	k, err := h.service.SubmitKYC(c.Request().Context(), accountID, toKYCInput(values), files)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, k.Masked())
}

// Completion handles GET /v1/onboarding/completion.
//
// @Summary      Onboarding completion percentage
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Completion
// @Router       /v1/onboarding/completion [get]
func (h *OnboardingHandler) Completion(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	comp, err := h.service.Completion(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comp)
}

// Gate handles GET /v1/onboarding/gate.
//
// @Summary      Whether the account may use gated features
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Gate
// @Router       /v1/onboarding/gate [get]
func (h *OnboardingHandler) Gate(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	g, err := h.service.Gate(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

// MyCombined handles GET /v1/me/combined.
//
// @Summary      The caller's account with all onboarding records
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.MyOnboarding
// @Failure      404  {object}  errorResponse
// @Router       /v1/me/combined [get]
func (h *OnboardingHandler) MyCombined(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	mine, err := h.service.MyCombined(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mine)
}

// readForm parses the request form and opens the files of section's slots.
// The caller must run cleanup once the service returned.
func readForm(c echo.Context, section domain.Section) (formValues, ports.Uploads, func(), error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, nil, func() {}, echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	form := c.Request().MultipartForm
	files := make(ports.Uploads)
	var opened []io.Closer
	cleanup := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, key := range domain.SectionFiles[section] {
		fh := firstFile(form, string(key))
		if fh == nil {
			continue
		}
		u, f, err := openUpload(fh)
		if err != nil {
			cleanup()
			return nil, nil, func() {}, err
		}
		opened = append(opened, f)
		files[key] = u
	}
	return formValues(params), files, cleanup, nil
}

// openUpload sniffs the real content type from the file's leading bytes and
// rewinds it; the client supplied Content-Type is ignored.
func openUpload(fh *multipart.FileHeader) (*ports.Upload, multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("sniff upload %s: %w", fh.Filename, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("rewind upload %s: %w", fh.Filename, err)
	}
	return &ports.Upload{
		Filename:    fh.Filename,
		ContentType: mt.String(),
		Size:        fh.Size,
		Reader:      f,
	}, f, nil
}
