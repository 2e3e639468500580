// Команда staticlint запускает набор анализаторов кода проекта.
//
// Запуск: go run ./cmd/staticlint ./...
//
// Состав:
//   - стандартные анализаторы golang.org/x/tools/go/analysis/passes;
//   - все анализаторы SA из staticcheck, а также simple и stylecheck;
//   - nilerr: возврат nil вместо проверенной ошибки;
//   - bodyclose: незакрытое тело ответа HTTP, актуально для клиента Shlink;
//   - osexitmain: прямой вызов os.Exit в функции main пакета main.
package main

import (
	"github.com/gostaticanalysis/nilerr"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// stylecheckChecks проверки stylecheck; ST1000 (комментарий пакета) отключен
var stylecheckChecks = map[string]bool{
	"ST1005": true,
	"ST1006": true,
	"ST1008": true,
	"ST1012": true,
	"ST1019": true,
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,

		nilerr.Analyzer,
		bodyclose.Analyzer,
		OsExitAnalyzer,
	}

	for _, a := range staticcheck.Analyzers {
		list = append(list, a.Analyzer)
	}
	for _, a := range simple.Analyzers {
		list = append(list, a.Analyzer)
	}
	for _, a := range stylecheck.Analyzers {
		if stylecheckChecks[a.Analyzer.Name] {
			list = append(list, a.Analyzer)
		}
	}
	return list
}

func main() {
	multichecker.Main(analyzers()...)
}
