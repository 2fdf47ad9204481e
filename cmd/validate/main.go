package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"formval/internal/config"
	"formval/internal/instrument"
	"formval/internal/submission"
)

func main() {
	os.Exit(run())
}

func run() int {
	collectAll := flag.Bool("all", false, "report every field error instead of stopping at the first")
	trace := flag.Bool("trace", false, "print per-field validation spans to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: validate [flags] <form.json> <submission.json>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		return 2
	}

	log := logrus.New()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	// 2. Load form and submission
	form, err := readJSON[submission.Form](flag.Arg(0))
	if err != nil {
		log.Errorf("Failed to read form: %v", err)
		return 2
	}
	sub, err := readJSON[submission.Submission](flag.Arg(1))
	if err != nil {
		log.Errorf("Failed to read submission: %v", err)
		return 2
	}
	log.Debugf("Form %s loaded (%d fields), submission has %d responses",
		form.ID, len(form.Fields), len(sub.Responses))

	// 3. Resolve options
	opts := submission.Options{CollectAll: cfg.Validation.CollectAll || *collectAll}
	now, err := cfg.Validation.Now()
	if err != nil {
		log.Errorf("Bad config: %v", err)
		return 2
	}
	opts.Now = now

	// 4. Instrumentation
	ctx := context.Background()
	var recorder *instrument.Recorder
	if cfg.Trace.Enabled || *trace {
		recorder = instrument.NewRecorder()
		ctx = instrument.WithInstrumenter(ctx, instrument.NewInstrumenter(recorder))
		ctx = instrument.WithTraceID(ctx, uuid.New().String())
	}

	// 5. Validate
	report, err := submission.Process(ctx, form, sub, opts)
	if err != nil {
		log.Errorf("Validation aborted: %v", err)
		return 2
	}

	// 6. Report
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Errorf("Failed to write report: %v", err)
		return 2
	}
	if recorder != nil {
		for _, ev := range recorder.Events() {
			log.WithFields(logrus.Fields{
				"field":    ev.FieldID,
				"type":     ev.FieldType,
				"status":   ev.Status,
				"duration": fmt.Sprintf("%.3fms", ev.DurationMs),
			}).Info("span")
		}
	}

	if !report.Valid {
		log.Warnf("Submission %s rejected (%d field errors)", report.SubmissionID, len(report.Errors))
		return 1
	}
	log.Infof("Submission %s valid", report.SubmissionID)
	return 0
}

func readJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &out, nil
}
