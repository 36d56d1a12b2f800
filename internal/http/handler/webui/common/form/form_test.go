package form

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common/markup"
	"github.com/google/go-cmp/cmp"
)

func TestHasFileFields(t *testing.T) {
	fieldsWithFile := []Field{
		{Name: "name", Kind: KindText},
		{Name: "document", Kind: KindCustom, Multipart: true},
	}
	if !hasFileFields(fieldsWithFile) {
		t.Error("Expected hasFileFields to return true for fields with file type")
	}

	fieldsWithoutFile := []Field{
		{Name: "name", Kind: KindText},
		{Name: "email", Kind: KindText},
	}
	if hasFileFields(fieldsWithoutFile) {
		t.Error("Expected hasFileFields to return false for fields without file type")
	}
}

func TestNewFormWithFileField(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	writer.WriteField("name", "John Doe")

	fileWriter, err := writer.CreateFormFile("document", "test.txt")
	if err != nil {
		t.Fatal(err)
	}
	fileWriter.Write([]byte("test file content"))

	writer.Close()

	req := httptest.NewRequest("POST", "/test", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	fields := []Field{
		{Name: "name", Kind: KindText},
		{Name: "document", Kind: KindCustom, Multipart: true},
	}

	form := New(fields)

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := map[string]string{
		"name":     "John Doe",
		"document": "test.txt",
	}
	if diff := cmp.Diff(expected, form.Values); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}

	if len(form.Files["document"]) != 1 {
		t.Errorf("Expected one uploaded document, got %d", len(form.Files["document"]))
	}
}

func TestNewFormWithoutFileField(t *testing.T) {
	formData := "name=Jane+Doe&email=jane%40example.com&consent=on"
	req := newURLEncodedRequest(formData)

	fields := []Field{
		{Name: "name", Kind: KindText},
		{Name: "email", Kind: KindText},
		{Name: "consent", Kind: KindCheckbox},
		{Name: "newsletter", Kind: KindCheckbox},
	}

	form := New(fields)

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := map[string]string{
		"name":       "Jane Doe",
		"email":      "jane@example.com",
		"consent":    "on",
		"newsletter": "",
	}
	if diff := cmp.Diff(expected, form.Values); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestFileFormAcceptsURLEncodedRequest(t *testing.T) {
	form := New([]Field{
		{Name: "name", Kind: KindText},
		{Name: "document", Kind: KindCustom, Multipart: true},
	})

	if err := form.Handle(newURLEncodedRequest("name=Jane")); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if got := form.Values["name"]; got != "Jane" {
		t.Errorf("unexpected name %q", got)
	}

	if len(form.Files["document"]) != 0 {
		t.Error("expected no uploaded document")
	}
}

func TestFormValidation(t *testing.T) {
	fields := []Field{
		{Name: "name", Kind: KindText, Validation: []ValidationRule{RequiredRule{}, MinLengthRule{MinLength: 2}}},
		{Name: "email", Kind: KindText, Validation: []ValidationRule{RequiredRule{}, EmailRule{}}},
		{Name: "phone", Kind: KindPhoneNumber, Validation: []ValidationRule{PhoneNumberRule{}}},
		{Name: "birthDate", Kind: KindDate, Validation: []ValidationRule{DateRule{}}},
		{Name: "gender", Kind: KindSelect, Options: []SelectOption{{Value: "Male", Label: "Male"}, {Value: "Female", Label: "Female"}}, Validation: []ValidationRule{OneOfRule{}}},
		{Name: "consent", Kind: KindCheckbox, Validation: []ValidationRule{CheckedRule{}}},
	}

	form := New(fields)

	values := url.Values{}
	values.Set("name", "J")
	values.Set("email", "not-an-email")
	values.Set("phone", "123")
	values.Set("birthDate", "31/31/2020")
	values.Set("gender", "Unknown")

	if err := form.Handle(newURLEncodedRequest(values.Encode())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if form.IsValid(context.Background()) {
		t.Fatal("expected form to be invalid")
	}

	expected := map[string]string{
		"name":      "Minimum length is 2 characters",
		"email":     "Must be a valid email address",
		"phone":     "Must be a valid phone number",
		"birthDate": "Must be a valid date (MM/dd/yyyy)",
		"gender":    "Must be one of the proposed options",
		"consent":   "This box must be checked",
	}
	if diff := cmp.Diff(expected, form.Errors); diff != "" {
		t.Errorf("unexpected errors (-want +got):\n%s", diff)
	}

	form.Values["name"] = "Jane"
	if !form.ValidateField(context.Background(), "name") {
		t.Errorf("expected name to be valid, got error %q", form.Errors["name"])
	}

	if _, exists := form.Errors["name"]; exists {
		t.Error("expected name error to be cleared")
	}

	if form.ValidateField(context.Background(), "unknown") {
		t.Error("expected unknown field validation to fail")
	}
}

func TestFormValidationAcceptsValidValues(t *testing.T) {
	fields := []Field{
		{Name: "email", Kind: KindText, Validation: []ValidationRule{RequiredRule{}, EmailRule{}}},
		{Name: "phone", Kind: KindPhoneNumber, Validation: []ValidationRule{RequiredRule{}, PhoneNumberRule{}}},
		{Name: "birthDate", Kind: KindDate, Validation: []ValidationRule{DateRule{}}},
		{Name: "consent", Kind: KindCheckbox, Validation: []ValidationRule{CheckedRule{}}},
		{Name: "allergies", Kind: KindMultilineText, Validation: []ValidationRule{MaxLengthRule{MaxLength: 10}}},
	}

	form := New(fields)

	values := url.Values{}
	values.Set("email", "jane@example.com")
	values.Set("phone", "081 234 5678")
	values.Set("birthDate", "1990-04-12")
	values.Set("consent", "on")

	if err := form.Handle(newURLEncodedRequest(values.Encode())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !form.IsValid(context.Background()) {
		t.Errorf("expected form to be valid, got errors %v", form.Errors)
	}
}

func TestFileRule(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	testCases := []struct {
		Name      string
		Content   []byte
		Rule      FileRule
		ExpectErr string
	}{
		{
			Name:    "accepted png",
			Content: png,
			Rule:    FileRule{MaxSize: 1024, MimeTypes: []string{"image/png", "application/pdf"}},
		},
		{
			Name:      "rejected text",
			Content:   []byte("test file content"),
			Rule:      FileRule{MimeTypes: []string{"image/png"}},
			ExpectErr: "File type text/plain; charset=utf-8 is not allowed",
		},
		{
			Name:      "too large",
			Content:   bytes.Repeat([]byte("a"), 2048),
			Rule:      FileRule{MaxSize: 1024},
			ExpectErr: "File must not exceed 1.0 KiB",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			writer := multipart.NewWriter(&buf)

			fileWriter, err := writer.CreateFormFile("document", "document.bin")
			if err != nil {
				t.Fatal(err)
			}
			fileWriter.Write(tc.Content)
			writer.Close()

			req := httptest.NewRequest("POST", "/test", &buf)
			req.Header.Set("Content-Type", writer.FormDataContentType())

			form := New([]Field{
				{Name: "document", Kind: KindCustom, Multipart: true, Validation: []ValidationRule{RequiredRule{}, tc.Rule}},
			})

			if err := form.Handle(req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			form.IsValid(context.Background())

			if got := form.Errors["document"]; got != tc.ExpectErr {
				t.Errorf("expected error %q, got %q", tc.ExpectErr, got)
			}
		})
	}
}

func TestFieldStateCallbacks(t *testing.T) {
	form := New(
		[]Field{{Name: "email", Kind: KindText}},
		WithValidationURL("/patients/new/validate", true),
	)

	form.Values["email"] = "jane@example.com"
	form.Errors["email"] = "nope"

	state, err := form.FieldState("email")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := FieldState{
		Name:     "email",
		Value:    "jane@example.com",
		Error:    "nope",
		OnChange: &Callback{URL: "/patients/new/validate?field=email", Target: "#field-email-item"},
		OnBlur:   &Callback{URL: "/patients/new/validate?field=email", Target: "#field-email-item"},
	}
	if diff := cmp.Diff(expected, state); diff != "" {
		t.Errorf("unexpected state (-want +got):\n%s", diff)
	}

	if _, err := form.FieldState("unknown"); err == nil {
		t.Error("expected an error for an unknown field")
	}
}

func TestRenderFieldUsesRendererOverrides(t *testing.T) {
	byName := FieldRendererFunc(func(state FieldState, field Field) templ.Component {
		return markup.Component(func(ctx context.Context, w *markup.Writer) {
			w.Element("span", "by-name")
		})
	})

	byKind := FieldRendererFunc(func(state FieldState, field Field) templ.Component {
		return markup.Component(func(ctx context.Context, w *markup.Writer) {
			w.Element("span", "by-kind")
		})
	})

	form := New(
		[]Field{
			{Name: "name", Kind: KindText},
			{Name: "notes", Kind: KindMultilineText},
			{Name: "phone", Kind: KindPhoneNumber},
		},
		WithFieldRenderer("name", byName),
		WithFieldRenderer(string(KindMultilineText), byKind),
	)

	testCases := map[string]string{
		"name":  "<span>by-name</span>",
		"notes": "<span>by-kind</span>",
		"phone": `type="tel"`,
	}

	for name, expected := range testCases {
		component, err := form.RenderField(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		html := render(t, component)
		if !strings.Contains(html, expected) {
			t.Errorf("expected field %s to contain %q, got:\n%s", name, expected, html)
		}
	}

	if _, err := form.RenderField("unknown"); err == nil {
		t.Error("expected an error for an unknown field")
	}
}

func TestGetFieldNames(t *testing.T) {
	form := New([]Field{{Name: "a"}, {Name: "b"}})

	if diff := cmp.Diff([]string{"a", "b"}, form.GetFieldNames()); diff != "" {
		t.Errorf("unexpected names (-want +got):\n%s", diff)
	}
}

func newURLEncodedRequest(body string) *http.Request {
	req := httptest.NewRequest("POST", "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
