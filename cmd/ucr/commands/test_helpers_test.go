package commands_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// executeCommand runs cmd under a bare root with args and returns stdout.
func executeCommand(t *testing.T, args []string, cmds ...*cobra.Command) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "ucr", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(cmds...)

	var stdout, stderr bytes.Buffer

	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), err
}

// useViper resets the global viper state for one test.
func useViper(t *testing.T, values map[string]interface{}) {
	t.Helper()

	viper.Reset()

	for key, value := range values {
		viper.Set(key, value)
	}

	t.Cleanup(viper.Reset)
}

// pathRecorder is an API stub that records request paths.
type pathRecorder struct {
	*httptest.Server

	mu    sync.Mutex
	paths []string
}

func newPathRecorder(t *testing.T, body string) *pathRecorder {
	t.Helper()

	recorder := &pathRecorder{}
	recorder.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		recorder.mu.Lock()
		recorder.paths = append(recorder.paths, request.URL.Path)
		recorder.mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(recorder.Close)

	return recorder
}

func (r *pathRecorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.paths...)
}
