// golangcilintunionfield package provides a plugin for golangci-lint to
// integrate the Unionfield analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-unionfield binary that you can use to
// lint your Go code with the Unionfield analyzer.
package golangcilintunionfield

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/eliduvid/unionfield/pkg/unionfieldanalysis"
)

func init() {
	register.Plugin("unionfield", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return UnionfieldLinter{}, nil
}

type UnionfieldLinter struct{}

func (UnionfieldLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{unionfieldanalysis.Analyzer}, nil
}

func (UnionfieldLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
