// Package validation holds the client-side profile checks run before
// any payload is sent to the backend. The backend re-validates
// everything; these rules exist to give instant feedback and to avoid
// doomed requests.
package validation

import (
	"regexp"
	"strings"

	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

var (
	// namePattern accepts latin letters, Turkish letters and spaces.
	namePattern = regexp.MustCompile(`^[a-zA-ZçğıöşüÇĞİÖŞÜ ]+$`)
	// e164Pattern is the international phone format, + and 2-15 digits.
	e164Pattern  = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	MinSkillLevel = 1
	MaxSkillLevel = 10
)

// Departments is the closed list of study programs offered on the
// registration and profile forms.
var Departments = []string{
	"Bilgisayar Mühendisliği",
	"Spor Bilimleri",
	"İşletme",
	"Elektrik Elektronik Mühendisliği",
	"Makine Mühendisliği",
	"Psikoloji",
	"İktisat",
	"Tıp",
	"Endüstri Mühendisliği",
	"Mimarlık",
	"İnşaat Mühendisliği",
	"Kimya Mühendisliği",
}

// Grades is the closed list of class years, prep through graduate.
var Grades = []string{
	"Hazırlık",
	"1. Sınıf",
	"2. Sınıf",
	"3. Sınıf",
	"4. Sınıf",
	"5. Sınıf",
	"6. Sınıf",
	"6+ Sınıf",
	"Mezun",
}

// Gender is a form option; the wire value is "1" or "0".
type Gender struct {
	Value string
	Label string
}

var Genders = []Gender{
	{Value: "1", Label: "Erkek"},
	{Value: "0", Label: "Kadın"},
}

// Result reports which rules a payload violated. Messages are the
// user-facing Turkish strings rendered next to the form.
type Result struct {
	Valid  bool
	Errors []string
}

func result(errs []string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateUserProfile runs every profile rule and collects all
// violations, so the form can surface the full list at once. Student
// rules only apply when the user is flagged as a student.
func ValidateUserProfile(user types.User) Result {
	var errs []string

	if !namePattern.MatchString(strings.TrimSpace(user.FirstName)) {
		errs = append(errs, "İsim sadece harfler ve boşluklar içermelidir")
	}
	if !namePattern.MatchString(strings.TrimSpace(user.LastName)) {
		errs = append(errs, "Soyisim sadece harfler ve boşluklar içermelidir")
	}
	if user.IsMale != "1" && user.IsMale != "0" {
		errs = append(errs, "Cinsiyet gereklidir")
	}
	if !e164Pattern.MatchString(strings.TrimSpace(user.PhoneNumber)) {
		errs = append(errs, "Telefon numarası geçerli formatta olmalıdır (E.164)")
	}
	if user.SkillLevel < MinSkillLevel || user.SkillLevel > MaxSkillLevel {
		errs = append(errs, "Yetenek seviyesi 1 ile 10 arasında olmalıdır")
	}

	if user.IsStudent {
		if !contains(Departments, user.Department) {
			errs = append(errs, "Bölüm seçiniz")
		}
		if !contains(Grades, user.Grade) {
			errs = append(errs, "Sınıf seçiniz")
		}
		if user.StudentNumber < 0 {
			errs = append(errs, "Geçerli bir öğrenci numarası girin")
		}
	}

	for _, role := range user.Roles {
		if strings.TrimSpace(role) == "" {
			errs = append(errs, "Geçersiz roller mevcut")
			break
		}
	}

	return result(errs)
}

// ValidateEmail checks the address used on the email-change form.
func ValidateEmail(email string) Result {
	var errs []string
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		errs = append(errs, "E-posta gereklidir ve geçerli olmalıdır")
	}
	return result(errs)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
