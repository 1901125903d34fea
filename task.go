package twocaptcha

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
)

// Capability identifies a captcha family supported by the service. It
// selects the in.php method parameter; task structs carry the per-family
// request fields. There is deliberately no client subtype per family.
type Capability int

const (
	CapabilityImage Capability = iota
	CapabilityImageBase64
	CapabilityRecaptchaV2
	CapabilityRecaptchaV3
	CapabilityHCaptcha
	CapabilityTurnstile
)

// method returns the in.php method parameter for this capability.
func (c Capability) method() string {
	switch c {
	case CapabilityImage:
		return "post"
	case CapabilityImageBase64:
		return "base64"
	case CapabilityRecaptchaV2, CapabilityRecaptchaV3:
		return "userrecaptcha"
	case CapabilityHCaptcha:
		return "hcaptcha"
	case CapabilityTurnstile:
		return "turnstile"
	}
	return ""
}

// Task describes one captcha to submit. Implementations fill the submission
// form with their family-specific fields.
type Task interface {
	capability() Capability
	fill(form url.Values) error
}

// ImageTask submits a raw captcha image as a multipart file upload.
type ImageTask struct {
	Image []byte
}

func (t ImageTask) capability() Capability { return CapabilityImage }

func (t ImageTask) fill(url.Values) error {
	if len(t.Image) == 0 {
		return fmt.Errorf("image task: empty image")
	}
	return nil
}

// Base64ImageTask submits a captcha image base64-encoded in the form body.
type Base64ImageTask struct {
	Image []byte
}

func (t Base64ImageTask) capability() Capability { return CapabilityImageBase64 }

func (t Base64ImageTask) fill(form url.Values) error {
	if len(t.Image) == 0 {
		return fmt.Errorf("base64 task: empty image")
	}
	form.Set("body", base64.StdEncoding.EncodeToString(t.Image))
	return nil
}

// RecaptchaV2Task submits a reCAPTCHA v2 challenge by site key and page URL.
type RecaptchaV2Task struct {
	SiteKey   string
	PageURL   string
	Invisible bool
}

func (t RecaptchaV2Task) capability() Capability { return CapabilityRecaptchaV2 }

func (t RecaptchaV2Task) fill(form url.Values) error {
	if t.SiteKey == "" || t.PageURL == "" {
		return fmt.Errorf("recaptcha v2 task: SiteKey and PageURL are required")
	}
	form.Set("googlekey", t.SiteKey)
	form.Set("pageurl", t.PageURL)
	if t.Invisible {
		form.Set("invisible", "1")
	}
	return nil
}

// RecaptchaV3Task submits a reCAPTCHA v3 challenge.
type RecaptchaV3Task struct {
	SiteKey  string
	PageURL  string
	Action   string
	MinScore float64
}

func (t RecaptchaV3Task) capability() Capability { return CapabilityRecaptchaV3 }

func (t RecaptchaV3Task) fill(form url.Values) error {
	if t.SiteKey == "" || t.PageURL == "" {
		return fmt.Errorf("recaptcha v3 task: SiteKey and PageURL are required")
	}
	form.Set("googlekey", t.SiteKey)
	form.Set("pageurl", t.PageURL)
	form.Set("version", "v3")
	if t.Action != "" {
		form.Set("action", t.Action)
	}
	if t.MinScore > 0 {
		form.Set("min_score", strconv.FormatFloat(t.MinScore, 'f', -1, 64))
	}
	return nil
}

// HCaptchaTask submits an hCaptcha challenge.
type HCaptchaTask struct {
	SiteKey string
	PageURL string
}

func (t HCaptchaTask) capability() Capability { return CapabilityHCaptcha }

func (t HCaptchaTask) fill(form url.Values) error {
	if t.SiteKey == "" || t.PageURL == "" {
		return fmt.Errorf("hcaptcha task: SiteKey and PageURL are required")
	}
	form.Set("sitekey", t.SiteKey)
	form.Set("pageurl", t.PageURL)
	return nil
}

// TurnstileTask submits a Cloudflare Turnstile challenge.
type TurnstileTask struct {
	SiteKey string
	PageURL string
	Action  string
}

func (t TurnstileTask) capability() Capability { return CapabilityTurnstile }

func (t TurnstileTask) fill(form url.Values) error {
	if t.SiteKey == "" || t.PageURL == "" {
		return fmt.Errorf("turnstile task: SiteKey and PageURL are required")
	}
	form.Set("sitekey", t.SiteKey)
	form.Set("pageurl", t.PageURL)
	if t.Action != "" {
		form.Set("action", t.Action)
	}
	return nil
}

// SubmitOption adds optional parameters to a submission.
type SubmitOption func(form url.Values)

// WithNumeric sets the service's numeric tag (1: digits only, 2: letters
// only, 3: either, 4: both).
func WithNumeric(n int) SubmitOption {
	return func(form url.Values) {
		form.Set("numeric", strconv.Itoa(n))
	}
}

// WithPingback sets a per-job callback URL. The URL must already be on the
// account's pingback whitelist (see AddPingback).
func WithPingback(pingbackURL string) SubmitOption {
	return func(form url.Values) {
		form.Set("pingback", pingbackURL)
	}
}

// WithParam sets an arbitrary extra key/value parameter defined by the
// remote API.
func WithParam(key, value string) SubmitOption {
	return func(form url.Values) {
		form.Set(key, value)
	}
}
