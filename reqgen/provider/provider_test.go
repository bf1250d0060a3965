package provider

import (
	"strings"
	"testing"

	"github.com/tmstorey/reqwire/reqgen/ir"
)

func TestLoadValidPackage(t *testing.T) {
	t.Setenv("GOWORK", "off")

	p := &SourceProvider{Dir: "testdata/valid"}
	pkgs, err := p.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1", len(pkgs))
	}
	pkg := pkgs[0]

	if pkg.Name != "valid" {
		t.Errorf("package name = %q, want %q", pkg.Name, "valid")
	}
	if len(pkg.Requests) != 2 {
		t.Fatalf("got %d requests, want 2", len(pkg.Requests))
	}

	get := pkg.FindRequest("GetUser")
	if get == nil {
		t.Fatal("GetUser not found")
	}
	if get.Method != "GET" || get.Path != "/api/users/{id}" || get.Response != "User" {
		t.Errorf("GetUser directive args = %q %q %q", get.Method, get.Path, get.Response)
	}
	if !strings.Contains(get.Doc, "fetches a single user") {
		t.Errorf("doc not carried over: %q", get.Doc)
	}
	if strings.Contains(get.Doc, "reqwire:") {
		t.Errorf("directive line leaked into doc: %q", get.Doc)
	}

	// TraceID carries rest:"-" and must be dropped entirely.
	fields := make(map[string]ir.Field)
	for _, f := range get.Fields {
		fields[f.Name] = f
	}
	if _, ok := fields["TraceID"]; ok {
		t.Error("TraceID should be skipped")
	}

	tests := []struct {
		name string
		want ir.Field
	}{
		{"ID", ir.Field{
			Name: "ID", Type: "UserID", Elem: "UserID", Underlying: "int64",
			Role: ir.RolePath, WireName: "id",
		}},
		{"IncludePosts", ir.Field{
			Name: "IncludePosts", Type: "*bool", Elem: "bool", Optional: true,
			Role: ir.RoleQuery, WireName: "include_posts",
		}},
		{"PageSize", ir.Field{
			Name: "PageSize", Type: "*int", Elem: "int", Optional: true,
			Role: ir.RoleQuery, WireName: "page_size",
		}},
		{"APIKey", ir.Field{
			Name: "APIKey", Type: "string", Elem: "string",
			Role: ir.RoleHeader, WireName: "api_key", HeaderName: "X-Api-Key",
		}},
		{"Auth", ir.Field{
			Name: "Auth", Type: "string", Elem: "string",
			Role: ir.RoleHeader, WireName: "X-Custom-Auth", HeaderName: "X-Custom-Auth",
		}},
		{"StartedAt", ir.Field{
			Name: "StartedAt", Type: "time.Time", Elem: "time.Time",
			Role: ir.RoleNone, WireName: "started_at",
		}},
	}
	for _, tt := range tests {
		got, ok := fields[tt.name]
		if !ok {
			t.Errorf("field %s not found", tt.name)
			continue
		}
		got.Doc = ""
		if got != tt.want {
			t.Errorf("field %s = %+v, want %+v", tt.name, got, tt.want)
		}
	}

	if _, ok := pkg.Imports["time"]; !ok {
		t.Errorf("time import not recorded: %v", pkg.Imports)
	}

	create := pkg.FindRequest("CreateUser")
	if create == nil {
		t.Fatal("CreateUser not found")
	}
	byName := make(map[string]ir.Field)
	for _, f := range create.Fields {
		byName[f.Name] = f
	}
	if got := byName["Name"].Validate; got != "ValidateName" {
		t.Errorf("Name.Validate = %q", got)
	}
	if got := byName["Email"].Rules; got != "email" {
		t.Errorf("Email.Rules = %q", got)
	}
	if !byName["Role"].Default {
		t.Error("Role.Default not set")
	}
	// An explicit json tag supplies the wire name when rest gives none.
	if got := byName["Notes"].WireName; got != "notes_field" {
		t.Errorf("Notes.WireName = %q", got)
	}

	if len(pkg.Clients) != 1 {
		t.Fatalf("got %d clients, want 1", len(pkg.Clients))
	}
	c := pkg.Clients[0]
	if c.ConfigName != "BackendConfig" || c.ClientName != "BackendClient" {
		t.Errorf("client names = %q %q", c.ConfigName, c.ClientName)
	}
	if c.BaseURL != "https://api.example.com" {
		t.Errorf("base url = %q", c.BaseURL)
	}
	wantReqs := []ir.ClientRequest{
		{TypeName: "GetUser", MethodName: "GetUser"},
		{TypeName: "CreateUser", MethodName: "NewUser"},
	}
	if len(c.Requests) != len(wantReqs) {
		t.Fatalf("got %d client requests, want %d", len(c.Requests), len(wantReqs))
	}
	for i, want := range wantReqs {
		if c.Requests[i] != want {
			t.Errorf("request %d = %+v, want %+v", i, c.Requests[i], want)
		}
	}
}

func TestLoadFieldOrderPreserved(t *testing.T) {
	t.Setenv("GOWORK", "off")

	p := &SourceProvider{Dir: "testdata/valid"}
	pkgs, err := p.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	get := pkgs[0].FindRequest("GetUser")
	if get == nil {
		t.Fatal("GetUser not found")
	}
	want := []string{"ID", "IncludePosts", "PageSize", "APIKey", "Auth", "StartedAt"}
	if len(get.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(get.Fields), len(want))
	}
	for i, name := range want {
		if get.Fields[i].Name != name {
			t.Errorf("field %d = %q, want %q", i, get.Fields[i].Name, name)
		}
	}
}

func TestLoadRejectsNonStructTarget(t *testing.T) {
	t.Setenv("GOWORK", "off")

	p := &SourceProvider{Dir: "testdata/badtarget"}
	_, err := p.Load()
	if err == nil {
		t.Fatal("expected error for directive on non-struct type")
	}
	if !strings.Contains(err.Error(), "non-struct") {
		t.Errorf("unexpected error: %v", err)
	}
}
