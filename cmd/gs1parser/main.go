// Command gs1parser is an interactive console front-end for the GS1 syntax
// engine. It accepts bracketed AI element strings, unbracketed AI data and
// barcode scan data, printing the normalized data string and the extracted
// AIs, and optionally the scan data for a chosen symbology.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ZeroxCorbin/gs1-syntax-engine/dictionary"
	"github.com/ZeroxCorbin/gs1-syntax-engine/gs1"
)

type config struct {
	PermitUnknownAIs   bool     `yaml:"permitUnknownAIs"`
	AddCheckDigit      bool     `yaml:"addCheckDigit"`
	Symbology          string   `yaml:"symbology"`
	DisableValidations []string `yaml:"disableValidations"`
}

var symbologies = map[string]gs1.Symbology{
	"none":                gs1.SymNone,
	"databar-omni":        gs1.SymDataBarOmni,
	"databar-truncated":   gs1.SymDataBarTruncated,
	"databar-stacked":     gs1.SymDataBarStacked,
	"databar-stackedomni": gs1.SymDataBarStackedOmni,
	"databar-limited":     gs1.SymDataBarLimited,
	"databar-expanded":    gs1.SymDataBarExpanded,
	"upca":                gs1.SymUPCA,
	"upce":                gs1.SymUPCE,
	"ean13":               gs1.SymEAN13,
	"ean8":                gs1.SymEAN8,
	"gs1-128":             gs1.SymGS1128CCA,
	"gs1-128-ccc":         gs1.SymGS1128CCC,
	"qr":                  gs1.SymQR,
	"dm":                  gs1.SymDM,
}

func main() {
	var (
		configPath     = pflag.String("config", "", "YAML configuration file")
		dictionaryPath = pflag.String("syntax-dictionary", "", "load the AI table from a Syntax Dictionary file")
		symName        = pflag.String("sym", "", "symbology for scan data generation")
		permitUnknown  = pflag.Bool("permit-unknown-ais", false, "permit AIs not in the AI table")
		addCheckDigit  = pflag.Bool("add-check-digit", false, "complete EAN/UPC and DataBar primary check digits")
	)
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	cfg := config{}
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			logger.Fatal("reading config", "err", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			logger.Fatal("parsing config", "err", err)
		}
	}
	if pflag.CommandLine.Changed("permit-unknown-ais") {
		cfg.PermitUnknownAIs = *permitUnknown
	}
	if pflag.CommandLine.Changed("add-check-digit") {
		cfg.AddCheckDigit = *addCheckDigit
	}
	if *symName != "" {
		cfg.Symbology = *symName
	}

	engine, err := gs1.New()
	if err != nil {
		logger.Fatal("engine init", "err", err)
	}
	engine.SetPermitUnknownAIs(cfg.PermitUnknownAIs)
	engine.SetAddCheckDigit(cfg.AddCheckDigit)

	if *dictionaryPath != "" {
		raw, err := os.ReadFile(*dictionaryPath)
		if err != nil {
			logger.Fatal("reading syntax dictionary", "err", err)
		}
		entries, err := dictionary.ParseLines(strings.Split(string(raw), "\n"))
		if err != nil {
			logger.Fatal("parsing syntax dictionary", "err", err)
		}
		if err := engine.SetAITable(entries); err != nil {
			logger.Error("syntax dictionary rejected, using embedded table", "err", err)
		}
	}

	sym := gs1.SymNone
	if cfg.Symbology != "" {
		s, ok := symbologies[strings.ToLower(cfg.Symbology)]
		if !ok {
			logger.Fatal("unknown symbology", "symbology", cfg.Symbology)
		}
		sym = s
	}
	if err := engine.SetSymbology(sym); err != nil {
		logger.Fatal("symbology", "err", err)
	}

	for _, name := range cfg.DisableValidations {
		if err := engine.SetValidationEnabled(name, false); err != nil {
			logger.Fatal("disabling validation", "name", name, "err", err)
		}
	}

	if args := pflag.Args(); len(args) > 0 {
		for _, input := range args {
			process(engine, logger, input)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Enter bracketed AI data, unbracketed AI data or scan data; empty line quits.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() || scanner.Text() == "" {
			break
		}
		process(engine, logger, scanner.Text())
	}
}

// process dispatches one input line by its leading character and prints the
// outcome.
func process(engine *gs1.Engine, logger *log.Logger, input string) {
	var err error
	switch {
	case strings.HasPrefix(input, "("):
		err = engine.SetAIDataStr(input)
	case strings.HasPrefix(input, "]"):
		err = engine.ProcessScanData(input)
	default:
		err = engine.SetDataStr(input)
	}
	if err != nil {
		logger.Error("invalid input", "err", err)
		if markup := engine.LinterErrMarkup(); markup != "" {
			logger.Error("offending region", "markup", markup)
		}
		return
	}

	fmt.Printf("Data string:   %s\n", engine.DataStr())
	if ai := engine.AIDataStr(); ai != "" {
		fmt.Printf("AI data:       %s\n", ai)
		for _, line := range engine.HRI() {
			fmt.Printf("HRI:           %s\n", line)
		}
	}
	if engine.Symbology() != gs1.SymNone {
		scanData, err := engine.GenerateScanData()
		if err != nil {
			logger.Error("scan data generation", "err", err)
			return
		}
		fmt.Printf("Scan data:     %s\n", strings.ReplaceAll(scanData, "\x1D", "{GS}"))
	}
}
