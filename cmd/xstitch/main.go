package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/ironsheep/xstitch/internal/floss"
	"github.com/ironsheep/xstitch/internal/imaging"
	"github.com/ironsheep/xstitch/internal/logging"
	"github.com/ironsheep/xstitch/internal/pattern"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	inputFileName  = kingpin.Flag("image", "Image to convert to a scheme.").Short('i').Required().String()
	outputFileName = kingpin.Flag("output", "Output filename for the scheme; the extension selects the format.").Short('o').PlaceHolder("SCHEME.png").Default("scheme.png").String()
	catalogFile    = kingpin.Flag("catalog", "CSV floss catalog with Floss#,Description,Red,Green,Blue columns. Defaults to the built-in DMC table.").String()
	reportFileName = kingpin.Flag("report", "Write a JSON floss report to this file.").String()
	region         = kingpin.Flag("region", "Use only a named part of the image.").Enum(imaging.Regions...)
	crop           = kingpin.Flag("crop", "Use only this rectangle of the image.").PlaceHolder("X1,Y1,X2,Y2").String()

	width     = kingpin.Flag("width", "Number of crosses in a row.").Short('w').Default("120").Int()
	maxColors = kingpin.Flag("max-colors", "Max number of flosses to use.").Short('c').Default("15").Int()
	dpi       = kingpin.Flag("dpi", "Print resolution.").Default("300").Int()
	enhance   = kingpin.Flag("enhance", "Equalize image brightness before conversion.").Default("true").Bool()
	workers   = kingpin.Flag("workers", "Goroutines used for floss matching.").Default(fmt.Sprint(runtime.NumCPU())).Int()

	verbose = kingpin.Flag("verbose", "Enable verbose output.").Short('v').Bool()
)

func main() {
	kingpin.CommandLine.Help = "Cross-stitch scheme creator."
	kingpin.Version(fmt.Sprintf("xstitch %s (built %s, commit %s)", Version, BuildTime, GitCommit))
	kingpin.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if *verbose {
		logging.EnableDebug()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(ctx context.Context) error {
	catalog, err := loadCatalog(*catalogFile)
	if err != nil {
		return err
	}

	photo, err := imaging.Open(*inputFileName)
	if err != nil {
		return err
	}
	log.Printf("Input image width: %d, height: %d", photo.Bounds().Dx(), photo.Bounds().Dy())

	var rect *imaging.Region
	if *crop != "" {
		r, err := imaging.ParseRegion(*crop)
		if err != nil {
			return err
		}
		rect = &r
	}
	if photo, err = imaging.SelectRegion(photo, *region, rect); err != nil {
		return err
	}

	opts := pattern.Options{
		Width:     *width,
		MaxColors: *maxColors,
		DPI:       *dpi,
		Enhance:   *enhance,
		Workers:   *workers,
	}

	start := time.Now()
	res, err := pattern.BuildContext(ctx, photo, catalog, opts)
	if err != nil {
		return err
	}
	log.Printf("Pattern %dx%d built in %s", res.Columns(), res.Rows(), time.Since(start))

	log.Printf("Image has %d unique flosses.", len(res.Entries))
	for i, e := range res.Entries {
		log.Printf("%d. %s (#%s)", i+1, e.Floss.Name, e.Floss.ID)
	}

	g := res.Geometry
	gw, gh := res.Grid.Bounds().Dx(), res.Grid.Bounds().Dy()
	sw, sh := res.Scheme.Bounds().Dx(), res.Scheme.Bounds().Dy()
	log.Printf("Printout image is %.1fcm x %.1fcm", g.Centimeters(gw), g.Centimeters(gh))
	log.Printf("Scheme size is %.1fcm x %.1fcm", g.Centimeters(sw), g.Centimeters(sh))

	if err := imaging.Save(*outputFileName, res.Scheme); err != nil {
		return err
	}
	log.Printf("Scheme written to %s", *outputFileName)

	if *reportFileName != "" {
		if err := writeReport(*reportFileName, res.Report()); err != nil {
			return err
		}
	}
	return nil
}

func loadCatalog(path string) (*floss.Catalog, error) {
	if path == "" {
		return floss.Default()
	}
	return floss.LoadFile(path)
}

func writeReport(path string, rep pattern.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := rep.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
