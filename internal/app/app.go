package app

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/rook-computer/icongen/internal/icondir"
	"github.com/rook-computer/icongen/internal/render"
)

// OutputPath is the fixed location of the generated icon, relative to the
// working directory.
const OutputPath = "icon.ico"

// Exporter writes the painted raster to an icon container on disk.
type Exporter interface {
	WriteFile(path string, src image.Image) error
}

type App struct {
	Canvas   *render.Canvas
	Exporter Exporter
	Logger   Logger
	OutPath  string
}

func New(canvas *render.Canvas, exporter Exporter) *App {
	return &App{Canvas: canvas, Exporter: exporter, Logger: NoopLogger{}, OutPath: OutputPath}
}

// Run performs the full pipeline: fill the background, paint the
// wordmark, export the multi-resolution container. The only failure mode
// is export I/O.
func (app *App) Run() error {
	if app.Canvas == nil {
		app.Canvas = render.NewCanvas()
	}
	if app.Exporter == nil {
		app.Exporter = icondir.NewWriter()
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.OutPath == "" {
		app.OutPath = OutputPath
	}

	width, height := app.Canvas.Size()
	app.Logger.Infof("render", "canvas %dx%d allocated", width, height)

	app.Canvas.FillBackground()
	app.Canvas.DrawWordmark()
	app.Logger.Infof("render", "wordmark painted, %d glyphs", len(render.Wordmark))

	if err := app.Exporter.WriteFile(app.OutPath, app.Canvas.Image()); err != nil {
		app.Logger.Errorf("export", "write failed: %v", err)
		return fmt.Errorf("export %s: %w", app.OutPath, err)
	}
	app.Logger.Infof("export", "wrote %s", app.OutPath)
	return nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
