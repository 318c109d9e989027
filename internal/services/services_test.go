package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HasanBocek/KTUTennisCRM/internal/notify"
	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/enums"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

type capturedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

type stubBackend struct {
	server   *httptest.Server
	status   int
	envelope string
	requests []capturedRequest
}

func newStubBackend(t *testing.T, status int, envelope string) *stubBackend {
	t.Helper()
	stub := &stubBackend{status: status, envelope: envelope}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured := capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
		}
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				captured.Body = body
			}
		}
		stub.requests = append(stub.requests, captured)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		fmt.Fprint(w, stub.envelope)
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func newServices(t *testing.T, baseURL string) (*Services, *notify.Center) {
	t.Helper()
	client, err := gateway.NewClient(baseURL)
	if err != nil {
		t.Fatalf("gateway client: %v", err)
	}
	center := notify.NewCenter()
	svcs, err := New(Params{
		Gateway:  client,
		Notifier: center,
		Logger:   logger.New(logger.Options{ServiceName: "test"}),
	})
	if err != nil {
		t.Fatalf("services: %v", err)
	}
	return svcs, center
}

func authed() session.TokenSource {
	return session.StaticTokenSource("token-abc")
}

func unauthed() session.TokenSource {
	return session.StaticTokenSource("")
}

func TestLoginSuccessExtractsTokenPair(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	envelope := fmt.Sprintf(`{
		"code": 200,
		"message": "Giriş başarılı",
		"data": {"tokens": {
			"access": {"token": "acc", "expires": %q},
			"refresh": {"token": "ref", "expires": %q}
		}}
	}`, expires.Format(time.RFC3339), expires.Add(30*24*time.Hour).Format(time.RFC3339))

	stub := newStubBackend(t, http.StatusOK, envelope)
	svcs, center := newServices(t, stub.server.URL)

	res := svcs.Auth.Login(context.Background(), types.LoginCredentials{
		Identifier: "user@demo.com",
		Password:   "123456",
	})

	if !res.Success || res.Message != "Giriş başarılı" {
		t.Fatalf("unexpected result %+v", res.Result)
	}
	if res.Tokens == nil || res.Tokens.Access.Token != "acc" || res.Tokens.Refresh.Token != "ref" {
		t.Fatalf("tokens not extracted: %+v", res.Tokens)
	}
	if !res.Tokens.Access.Expires.Equal(expires) {
		t.Fatalf("access expiry %v, want %v", res.Tokens.Access.Expires, expires)
	}

	req := stub.requests[0]
	if req.Method != http.MethodPost || req.Path != "/auth/login" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.Body["identifier"] != "user@demo.com" || req.Body["password"] != "123456" {
		t.Fatalf("unexpected body %+v", req.Body)
	}
	if len(center.Pending()) != 0 {
		t.Fatal("login must not toast")
	}
}

func TestLoginEnvelopeFailureMirrorsBackend(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, `{
		"code": 401,
		"message": "Kimlik bilgileri hatalı",
		"errors": ["Şifre yanlış"]
	}`)
	svcs, _ := newServices(t, stub.server.URL)

	res := svcs.Auth.Login(context.Background(), types.LoginCredentials{Identifier: "x", Password: "y"})
	if res.Success || res.Tokens != nil {
		t.Fatalf("expected failure, got %+v", res)
	}
	if res.Message != "Kimlik bilgileri hatalı" || len(res.Errors) != 1 || res.Errors[0] != "Şifre yanlış" {
		t.Fatalf("backend failure not mirrored: %+v", res.Result)
	}
}

func TestLoginNetworkFailureUsesConnectivityMessage(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, "{}")
	stub.server.Close()
	svcs, _ := newServices(t, stub.server.URL)

	res := svcs.Auth.Login(context.Background(), types.LoginCredentials{Identifier: "x", Password: "y"})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Message != "Sunucuyla bağlantı kurulamadı. Lütfen tekrar deneyin." {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if len(res.Errors) != 1 || res.Errors[0] != "Ağ hatası veya sunucu mevcut değil" {
		t.Fatalf("unexpected errors %v", res.Errors)
	}
}

func TestRegisterReturnsUserID(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, `{
		"code": 200,
		"message": "Kayıt başarılı",
		"data": {"userId": "u-42"}
	}`)
	svcs, _ := newServices(t, stub.server.URL)

	res := svcs.Auth.Register(context.Background(), types.RegisterCredentials{
		FirstName: "Ali", LastName: "Veli", IsMale: "1",
		PhoneNumber: "+905551112233", SkillLevel: "4", Password: "123456",
	})
	if !res.Success || res.UserID != "u-42" {
		t.Fatalf("unexpected result %+v", res)
	}
	if req := stub.requests[0]; req.Path != "/auth/register" || req.Method != http.MethodPost {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestProfileUpdateUnauthenticatedSkipsNetwork(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, "{}")
	svcs, center := newServices(t, stub.server.URL)

	name := "Ali"
	res := svcs.Profile.Update(context.Background(), unauthed(), ProfilePatch{FirstName: &name})
	if res.Success || res.Message != "Oturum açılmamış" {
		t.Fatalf("unexpected result %+v", res.Result)
	}
	if len(stub.requests) != 0 {
		t.Fatal("no request may be sent without a session")
	}

	toasts := center.Pending()
	if len(toasts) != 1 || toasts[0].Level != notify.LevelDanger || toasts[0].Message != "Oturum açılmamış" {
		t.Fatalf("unexpected toasts %+v", toasts)
	}
}

func TestProfileUpdateSuccessToastsAndEchoes(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, `{
		"code": 200,
		"message": "Profil başarıyla güncellendi.",
		"data": {"_id": "me-1", "firstName": "Ali", "skillLevel": 6}
	}`)
	svcs, center := newServices(t, stub.server.URL)

	level := 6
	res := svcs.Profile.Update(context.Background(), authed(), ProfilePatch{SkillLevel: &level})
	if !res.Success || res.Updated == nil || res.Updated.ID != "me-1" {
		t.Fatalf("unexpected result %+v", res)
	}

	req := stub.requests[0]
	if req.Method != http.MethodPatch || req.Path != "/user/me" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.Auth != "Bearer token-abc" {
		t.Fatalf("missing bearer header, got %q", req.Auth)
	}
	if _, ok := req.Body["firstName"]; ok {
		t.Fatal("nil patch fields must be omitted")
	}
	if req.Body["skillLevel"] != float64(6) {
		t.Fatalf("unexpected body %+v", req.Body)
	}

	toasts := center.Pending()
	if len(toasts) != 1 || toasts[0].Level != notify.LevelSuccess {
		t.Fatalf("expected one success toast, got %+v", toasts)
	}
}

func TestUserDeleteFailureFansOutToasts(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, `{
		"code": 403,
		"message": "Kullanıcı silinemedi.",
		"errors": ["Yetkiniz yok", "Kullanıcının aktif üyeliği var"]
	}`)
	svcs, center := newServices(t, stub.server.URL)

	res := svcs.Users.Delete(context.Background(), authed(), "u-1")
	if res.Success {
		t.Fatal("expected failure")
	}

	toasts := center.Pending()
	if len(toasts) != 2 {
		t.Fatalf("expected one toast per error, got %+v", toasts)
	}
	for _, toast := range toasts {
		if toast.Level != notify.LevelDanger {
			t.Fatalf("unexpected level %+v", toast)
		}
	}
}

func TestUserCreateAndUpdatePaths(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, `{
		"code": 200,
		"message": "Kullanıcı başarıyla oluşturuldu.",
		"data": {"_id": "u-9", "firstName": "Ali"}
	}`)
	svcs, _ := newServices(t, stub.server.URL)
	ctx := context.Background()

	input := UserInput{FirstName: "Ali", LastName: "Veli", SkillLevel: "4"}
	if res := svcs.Users.Create(ctx, authed(), input); !res.Success || res.User.ID != "u-9" {
		t.Fatalf("create failed: %+v", res)
	}
	svcs.Users.Update(ctx, authed(), "u-9", input)
	svcs.Users.UpdateEmail(ctx, authed(), "u-9", "a@b.com", true)

	wantPaths := []string{"/user/", "/user/u-9", "/user/u-9/email"}
	wantMethods := []string{http.MethodPost, http.MethodPatch, http.MethodPatch}
	for i, req := range stub.requests {
		if req.Path != wantPaths[i] || req.Method != wantMethods[i] {
			t.Fatalf("request %d: %+v", i, req)
		}
	}
	if email := stub.requests[2].Body; email["email"] != "a@b.com" || email["isEmailVerified"] != true {
		t.Fatalf("unexpected email body %+v", email)
	}
}

func TestUserListAndMeDoNotToast(t *testing.T) {
	stub := newStubBackend(t, http.StatusInternalServerError, `{
		"code": 500, "message": "boom", "errors": ["boom"]
	}`)
	svcs, center := newServices(t, stub.server.URL)
	ctx := context.Background()

	if res := svcs.Users.List(ctx, authed()); res.Success {
		t.Fatal("expected failure")
	}
	if res := svcs.Users.Me(ctx, authed()); res.Success {
		t.Fatal("expected failure")
	}
	if toasts := center.Pending(); len(toasts) != 0 {
		t.Fatalf("reads must not toast, got %+v", toasts)
	}
}

func TestGroupCreateUnwrapsNestedGroup(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, `{
		"code": 200,
		"message": "Grup başarıyla oluşturuldu.",
		"data": {"group": {"_id": "g-1", "name": "Sabah Grubu", "membershipOpen": true}}
	}`)
	svcs, _ := newServices(t, stub.server.URL)

	res := svcs.Groups.Create(context.Background(), authed(), GroupInput{Name: "Sabah Grubu"})
	if !res.Success || res.Group == nil || res.Group.ID != "g-1" || !res.Group.MembershipOpen {
		t.Fatalf("nested group not extracted: %+v", res)
	}
	if req := stub.requests[0]; req.Path != "/group/" || req.Method != http.MethodPost {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestAttendanceRejectsUnknownStatusLocally(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, "{}")
	svcs, center := newServices(t, stub.server.URL)

	res := svcs.Attendance.Update(context.Background(), authed(), AttendanceUpdate{
		SessionID: "s-1", UserID: "u-1", Status: enums.AttendanceStatus("vanished"),
	})
	if res.Success || len(stub.requests) != 0 {
		t.Fatalf("unknown status must fail before the network: %+v", res)
	}
	if toasts := center.Pending(); len(toasts) != 1 {
		t.Fatalf("expected one toast, got %+v", toasts)
	}
}

func TestAttendanceUpdateSuccess(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, `{
		"code": 200,
		"message": "Katılım durumu başarıyla güncellendi."
	}`)
	svcs, center := newServices(t, stub.server.URL)

	res := svcs.Attendance.Update(context.Background(), authed(), AttendanceUpdate{
		SessionID: "s-1", UserID: "u-1", Status: enums.AttendanceStatusLate, Note: "5 dk",
	})
	if !res.Success {
		t.Fatalf("unexpected result %+v", res)
	}

	req := stub.requests[0]
	if req.Method != http.MethodPut || req.Path != "/session/s-1/user/u-1/attendance" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.Body["status"] != "late" || req.Body["note"] != "5 dk" {
		t.Fatalf("unexpected body %+v", req.Body)
	}
	if toasts := center.Pending(); len(toasts) != 1 || toasts[0].Level != notify.LevelSuccess {
		t.Fatalf("expected one success toast, got %+v", toasts)
	}
}

func TestSessionsListForUser(t *testing.T) {
	stub := newStubBackend(t, http.StatusOK, `{
		"code": 200,
		"data": [
			{"_id": "s-1", "status": "completed", "attendance": {"status": "present"}},
			{"_id": "s-2", "status": "planned", "attendance": {"status": "absent", "note": "raporlu"}}
		]
	}`)
	svcs, _ := newServices(t, stub.server.URL)

	res := svcs.Sessions.ListForUser(context.Background(), authed(), "u-7")
	if !res.Success || len(res.Sessions) != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Sessions[1].Attendance.Status != enums.AttendanceStatusAbsent || res.Sessions[1].Attendance.Note != "raporlu" {
		t.Fatalf("attendance not decoded: %+v", res.Sessions[1])
	}
	if req := stub.requests[0]; req.Path != "/session/user/u-7" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	client, _ := gateway.NewClient("http://localhost")
	if _, err := New(Params{Notifier: notify.NewCenter(), Logger: logger.New(logger.Options{})}); err == nil {
		t.Fatal("missing gateway must be rejected")
	}
	if _, err := New(Params{Gateway: client, Logger: logger.New(logger.Options{})}); err == nil {
		t.Fatal("missing notifier must be rejected")
	}
	if _, err := New(Params{Gateway: client, Notifier: notify.NewCenter()}); err == nil {
		t.Fatal("missing logger must be rejected")
	}
}
