package aliasmanagement

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/services/aliasregistry"
	"github.com/AntonioJCosta/aliasreg/internal/core/testutil"
)

func newTestRegistry() *aliasregistry.Registry {
	host := testutil.NewMapHost(
		map[string]alias.Operation{
			"upcase": func(args ...any) (any, error) {
				if len(args) != 1 {
					return nil, errors.New("upcase: wrong number of arguments")
				}
				return strings.ToUpper(args[0].(string)), nil
			},
		},
		map[string]alias.Cell{
			"fill-column":       testutil.NewMemoryCell(70),
			"gc-cons-threshold": testutil.NewMemoryCell(800000),
		},
		"gc-cons-threshold",
	)
	return aliasregistry.New(host)
}

func TestNewService(t *testing.T) {
	t.Run("should return a service if registry is not nil", func(t *testing.T) {
		svc := NewService(newTestRegistry(), nil)
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if registry is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil registry")
			}
		}()
		_ = NewService(nil, nil)
	})
}

func TestService_LoadTable(t *testing.T) {
	providerErr := errors.New("disk on fire")

	tests := []struct {
		name           string
		provider       *testutil.MockAliasTableProvider
		wantErr        error
		wantTotal      int
		wantRegistered int
		wantReplaced   int
		wantRejected   []string
	}{
		{
			name:     "no provider loads nothing",
			provider: nil,
		},
		{
			name: "all entries accepted",
			provider: &testutil.MockAliasTableProvider{
				GetAliasTableFunc: func() ([]alias.Entry, error) {
					return []alias.Entry{
						{Name: "string-upcase", Target: "upcase"},
						{Name: "column-fill", Target: "fill-column", Kind: alias.KindValue},
					}, nil
				},
			},
			wantTotal:      2,
			wantRegistered: 2,
		},
		{
			name: "bad entries are reported, the rest load",
			provider: &testutil.MockAliasTableProvider{
				GetAliasTableFunc: func() ([]alias.Entry, error) {
					return []alias.Entry{
						{Name: "string-upcase", Target: "upcase"},
						{Name: "gc-threshold", Target: "gc-cons-threshold", Kind: alias.KindValue},
						{Name: "", Target: "upcase"},
					}, nil
				},
			},
			wantTotal:      3,
			wantRegistered: 1,
			wantRejected:   []string{"gc-threshold", ""},
		},
		{
			name: "repeated names count once",
			provider: &testutil.MockAliasTableProvider{
				GetAliasTableFunc: func() ([]alias.Entry, error) {
					return []alias.Entry{
						{Name: "string-upcase", Target: "upcase"},
						{Name: "column-fill", Target: "fill-column", Kind: alias.KindValue},
						{Name: "string-upcase", Target: "upcase", Doc: "Upcase a string."},
						{Name: "gc-threshold", Target: "gc-cons-threshold", Kind: alias.KindValue},
						{Name: "gc-threshold", Target: "fill-column", Kind: alias.KindValue},
					}, nil
				},
			},
			wantTotal:      5,
			wantRegistered: 3,
			wantReplaced:   1,
			wantRejected:   []string{"gc-threshold"},
		},
		{
			name: "provider failure",
			provider: &testutil.MockAliasTableProvider{
				GetAliasTableFunc: func() ([]alias.Entry, error) {
					return nil, providerErr
				},
			},
			wantErr: providerErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry()
			var svc = NewService(reg, nil)
			if tt.provider != nil {
				svc = NewService(reg, tt.provider)
			}

			report, err := svc.LoadTable()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadTable() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTable() unexpected error = %v", err)
			}
			if report.Total != tt.wantTotal || report.Registered != tt.wantRegistered {
				t.Errorf("LoadTable() total/registered = %d/%d, want %d/%d", report.Total, report.Registered, tt.wantTotal, tt.wantRegistered)
			}
			if report.Replaced != tt.wantReplaced {
				t.Errorf("LoadTable() replaced = %d, want %d", report.Replaced, tt.wantReplaced)
			}
			var rejectedNames []string
			for _, r := range report.Rejected {
				rejectedNames = append(rejectedNames, r.Entry.Name)
				if r.Err == nil {
					t.Errorf("rejected entry %q has no reason", r.Entry.Name)
				}
			}
			if !reflect.DeepEqual(rejectedNames, tt.wantRejected) {
				t.Errorf("LoadTable() rejected = %v, want %v", rejectedNames, tt.wantRejected)
			}
			if reg.Len() != tt.wantRegistered {
				t.Errorf("registry holds %d entries, want %d", reg.Len(), tt.wantRegistered)
			}
		})
	}
}

func TestService_InvokeAndValues(t *testing.T) {
	reg := newTestRegistry()
	svc := NewService(reg, nil)
	if err := reg.RegisterOperationAlias("string-upcase", "upcase", ""); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterValueAlias("column-fill", "fill-column"); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Invoke("string-upcase", "abc")
	if err != nil || got != "ABC" {
		t.Errorf("Invoke(string-upcase) = %v, %v; want ABC, nil", got, err)
	}

	if _, err := svc.Invoke("string-downcase", "abc"); !errors.Is(err, alias.ErrNotFound) {
		t.Errorf("Invoke(unknown) error = %v, want ErrNotFound", err)
	}

	if err := svc.WriteValue("column-fill", 80); err != nil {
		t.Fatalf("WriteValue() error = %v", err)
	}
	v, err := svc.ReadValue("fill-column")
	if err != nil || v != 80 {
		t.Errorf("ReadValue(fill-column) = %v, %v; want 80, nil", v, err)
	}

	if _, err := svc.ReadValue("no-such-var"); !errors.Is(err, alias.ErrNotFound) {
		t.Errorf("ReadValue(unknown) error = %v, want ErrNotFound", err)
	}
	if err := svc.WriteValue("no-such-var", 1); !errors.Is(err, alias.ErrNotFound) {
		t.Errorf("WriteValue(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestService_Describe(t *testing.T) {
	reg := newTestRegistry()
	svc := NewService(reg, nil)
	errs := reg.RegisterAll([]alias.Entry{
		{Name: "string-upcase", Target: "upcase", Doc: "Upcase a string."},
		{Name: "column-fill", Target: "fill-column", Kind: alias.KindValue},
		{Name: "dangling", Target: "never-defined"},
		{Name: "a", Target: "b"},
		{Name: "b", Target: "a"},
	})
	if len(errs) != 0 {
		t.Fatalf("RegisterAll() errors = %v", errs)
	}

	tests := []struct {
		name           string
		query          string
		wantAlias      bool
		wantKind       alias.Kind
		wantCanonical  string
		wantResolvable bool
		wantErrIs      error
	}{
		{"operation alias", "string-upcase", true, alias.KindOperation, "upcase", true, nil},
		{"value alias", "column-fill", true, alias.KindValue, "fill-column", true, nil},
		{"canonical operation", "upcase", false, alias.KindOperation, "upcase", true, nil},
		{"canonical value", "fill-column", false, alias.KindValue, "fill-column", true, nil},
		{"dangling alias", "dangling", true, alias.KindOperation, "never-defined", false, alias.ErrNotFound},
		{"cycle", "a", true, alias.KindOperation, "", false, alias.ErrAliasCycle},
		{"unknown", "nothing", false, alias.KindOperation, "nothing", false, alias.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := svc.Describe(tt.query)
			if err != nil {
				t.Fatalf("Describe() unexpected error = %v", err)
			}
			if (d.Entry != nil) != tt.wantAlias {
				t.Errorf("Describe() alias = %v, want %v", d.Entry != nil, tt.wantAlias)
			}
			if d.Kind != tt.wantKind {
				t.Errorf("Describe() kind = %q, want %q", d.Kind, tt.wantKind)
			}
			if d.Canonical != tt.wantCanonical {
				t.Errorf("Describe() canonical = %q, want %q", d.Canonical, tt.wantCanonical)
			}
			if d.Resolvable != tt.wantResolvable {
				t.Errorf("Describe() resolvable = %v, want %v", d.Resolvable, tt.wantResolvable)
			}
			if tt.wantErrIs != nil && !errors.Is(d.ResolveErr, tt.wantErrIs) {
				t.Errorf("Describe() resolve error = %v, want %v", d.ResolveErr, tt.wantErrIs)
			}
		})
	}

	if _, err := svc.Describe(""); !errors.Is(err, alias.ErrInvalidName) {
		t.Errorf("Describe(\"\") error = %v, want ErrInvalidName", err)
	}
}

func TestService_ListAliases(t *testing.T) {
	reg := newTestRegistry()
	svc := NewService(reg, nil)
	reg.RegisterAll([]alias.Entry{
		{Name: "string-upcase", Target: "upcase"},
		{Name: "column-fill", Target: "fill-column", Kind: alias.KindValue},
		{Name: "string-up", Target: "upcase"},
	})

	tests := []struct {
		name   string
		prefix string
		kind   alias.Kind
		want   []string
	}{
		{"everything", "", "", []string{"string-upcase", "column-fill", "string-up"}},
		{"prefix", "string-", "", []string{"string-upcase", "string-up"}},
		{"values only", "", alias.KindValue, []string{"column-fill"}},
		{"no match", "frame-", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, e := range svc.ListAliases(tt.prefix, tt.kind) {
				got = append(got, e.Name)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListAliases(%q, %q) = %v, want %v", tt.prefix, tt.kind, got, tt.want)
			}
		})
	}
}
