package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	receiptpdf "github.com/porticus-lab/go-receipt-pdf"
	"github.com/porticus-lab/go-receipt-pdf/internal/config"
	"github.com/porticus-lab/go-receipt-pdf/internal/logger"
)

func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "receipt",
		Short: "Generate a PDF purchase receipt from products.csv",
		Long: `receipt reads line items (columns product, price, qty) from a CSV file,
computes line totals and the grand total, and renders a paginated PDF receipt
into the output directory. The document is opened with the system viewer
afterwards unless --open=false is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), v, "")
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./receipt.yaml when present)")
	flags.String("input", "products.csv", "CSV file with product, price and qty columns")
	flags.String("template", "template.html", "markup template for the html strategy")
	flags.String("output-dir", receiptpdf.DefaultOutputDir, "directory receipts are written to")
	flags.String("strategy", string(receiptpdf.StrategyHTML), "renderer: html or direct")
	flags.Bool("open", true, "open the receipt with the system viewer")
	flags.String("currency", "₽", "currency marker printed after amounts")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("chrome-path", "", "Chrome or Chromium executable")
	flags.Bool("no-sandbox", false, "disable the Chrome sandbox (needed as root)")
	flags.Bool("auto-download", false, "download Chromium when none is installed")

	bind(v, flags.Lookup("input"), config.KeyInput)
	bind(v, flags.Lookup("template"), config.KeyTemplate)
	bind(v, flags.Lookup("output-dir"), config.KeyOutputDir)
	bind(v, flags.Lookup("strategy"), config.KeyStrategy)
	bind(v, flags.Lookup("open"), config.KeyOpen)
	bind(v, flags.Lookup("currency"), config.KeyCurrency)
	bind(v, flags.Lookup("log-level"), config.KeyLogLevel)
	bind(v, flags.Lookup("chrome-path"), config.KeyChromePath)
	bind(v, flags.Lookup("no-sandbox"), config.KeyNoSandbox)
	bind(v, flags.Lookup("auto-download"), config.KeyAutoDownload)

	root.AddCommand(
		newStrategyCmd(v, receiptpdf.StrategyHTML, "Render by filling the markup template and printing it with Chrome"),
		newStrategyCmd(v, receiptpdf.StrategyDirect, "Render by assembling the document directly"),
		newInitCmd(),
	)
	return root
}

func newStrategyCmd(v *viper.Viper, s receiptpdf.Strategy, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(s),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), v, s)
		},
	}
}

func bind(v *viper.Viper, f *pflag.Flag, key string) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// run executes one receipt. An empty strategy uses the configured one.
func run(ctx context.Context, out io.Writer, v *viper.Viper, strategy receiptpdf.Strategy) error {
	cfg := config.Load(v)

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if strategy == "" {
		strategy, err = receiptpdf.ParseStrategy(cfg.Strategy)
		if err != nil {
			return err
		}
	}

	renderer, closeRenderer, err := newRenderer(strategy, cfg, log)
	if err != nil {
		return err
	}
	defer closeRenderer()

	p := &receiptpdf.Pipeline{
		Input:    cfg.Input,
		Renderer: renderer,
		Sink:     receiptpdf.NewSink(cfg.OutputDir),
		Logger:   log.With(zap.String("strategy", string(strategy))),
	}
	if cfg.Open {
		p.Viewer = receiptpdf.NewSystemViewer()
	}

	path, err := p.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, path)
	return nil
}

// newRenderer builds the renderer for s and a function releasing its
// resources.
func newRenderer(s receiptpdf.Strategy, cfg config.Config, log *zap.Logger) (receiptpdf.Renderer, func(), error) {
	switch s {
	case receiptpdf.StrategyDirect:
		font := receiptpdf.FindFont()
		if font.Builtin {
			log.Warn("no unicode font found, falling back to built-in font; non-Latin text may not render",
				zap.String("font", font.Family))
		} else {
			log.Debug("using font", zap.String("path", font.Regular))
		}
		return receiptpdf.NewDirectRenderer(font, receiptpdf.WithCurrency(cfg.Currency)), func() {}, nil

	case receiptpdf.StrategyHTML:
		lr := &lazyRenderer{build: func() (receiptpdf.Renderer, func(), error) {
			return newHTMLRenderer(cfg)
		}}
		return lr, lr.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", receiptpdf.ErrUnknownStrategy, s)
}

func newHTMLRenderer(cfg config.Config) (receiptpdf.Renderer, func(), error) {
	tpl, err := receiptpdf.LoadTemplate(cfg.Template)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (run \"receipt init\" to create a sample)", err)
	}
	opts := []receiptpdf.Option{receiptpdf.WithTimeout(cfg.Chrome.Timeout)}
	if cfg.Chrome.Path != "" {
		opts = append(opts, receiptpdf.WithChromePath(cfg.Chrome.Path))
	}
	if cfg.Chrome.NoSandbox {
		opts = append(opts, receiptpdf.WithNoSandbox())
	}
	if cfg.Chrome.AutoDownload {
		opts = append(opts, receiptpdf.WithAutoDownload())
	}
	conv, err := receiptpdf.NewConverter(opts...)
	if err != nil {
		return nil, nil, err
	}
	r := receiptpdf.NewHTMLRenderer(tpl, conv, receiptpdf.WithCurrency(cfg.Currency))
	return r, func() { _ = conv.Close() }, nil
}

// lazyRenderer builds its renderer on the first Render call. The pipeline
// renders only after the input has loaded, so a missing input is reported
// before a missing template or browser.
type lazyRenderer struct {
	build   func() (receiptpdf.Renderer, func(), error)
	r       receiptpdf.Renderer
	release func()
}

func (l *lazyRenderer) Render(ctx context.Context, rc *receiptpdf.Receipt) (*receiptpdf.Result, error) {
	if l.r == nil {
		r, release, err := l.build()
		if err != nil {
			return nil, err
		}
		l.r, l.release = r, release
	}
	return l.r.Render(ctx, rc)
}

func (l *lazyRenderer) Close() {
	if l.release != nil {
		l.release()
	}
}
