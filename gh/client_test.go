package gh

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/plume-ci/plume/configuration"
)

func TestGetToken(t *testing.T) {
	if token := GetToken(&configuration.Config{Token: "inline"}); token != "inline" {
		t.Fatalf("unexpected token %q", token)
	}
	if token := GetToken(&configuration.Config{}); token != "" {
		t.Fatalf("expected an empty token, got %q", token)
	}
}

func TestGetTokenFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := ioutil.WriteFile(path, []byte("from-file\n"), 0600); err != nil {
		t.Fatalf("failed to write token file: %v", err)
	}

	if token := GetToken(&configuration.Config{TokenFile: path}); token != "from-file" {
		t.Fatalf("unexpected token %q", token)
	}

	// An inline token takes precedence over the file.
	c := &configuration.Config{Token: "inline", TokenFile: path}
	if token := GetToken(c); token != "inline" {
		t.Fatalf("unexpected token %q", token)
	}

	// A missing file degrades to an empty token.
	c = &configuration.Config{TokenFile: filepath.Join(os.TempDir(), "does-not-exist")}
	if token := GetToken(c); token != "" {
		t.Fatalf("expected an empty token, got %q", token)
	}
}

func TestMakeClient(t *testing.T) {
	clt := MakeClient(&configuration.Config{Token: "secret"})
	if clt.Issues() == nil {
		t.Fatal("expected a usable issues service")
	}
}
