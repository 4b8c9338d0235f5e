package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"serviceability/internal/errors"
	"serviceability/internal/usecase"
	"serviceability/internal/util"

	"github.com/spf13/cobra"
)

const csvFileField = "csv_file"

func newImportCmd(opts *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Onboard merchants from a CSV file",
		Long: `Upload a CSV file with the columns
name,business_category,phone_number,email,pincodes
and print the per-row outcome. A header row is optional.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd, opts, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any row fails")

	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, opts *globalOptions, path string, strict bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	digest, err := util.DigestFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	body, contentType, err := multipartBody(path)
	if err != nil {
		return err
	}

	start := time.Now()

	var report usecase.OnboardingReport
	raw, err := opts.client().do(ctx, http.MethodPost, "/merchants/bulk/file", nil, contentType, body, &report)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return printJSON(out, raw)
	}

	fmt.Fprintf(out, "Imported %s (%s, sha256 %s) in %s\n",
		filepath.Base(path), util.FormatBytes(digest.Size), digest.ShortSum(), util.FormatDuration(time.Since(start)))
	fmt.Fprintf(out, "  total: %d  succeeded: %d  failed: %d\n", report.Total, report.Succeeded, report.Failed)

	for _, record := range report.Records {
		switch {
		case record.Error != nil:
			fmt.Fprintf(out, "  line %d: %s %s\n", record.Line, record.Error.Code, record.Error.Message)
		case len(record.RejectedPincodes) > 0 && record.MerchantID != nil:
			fmt.Fprintf(out, "  line %d: merchant %d created, rejected pincodes %v\n", record.Line, *record.MerchantID, record.RejectedPincodes)
		}
	}

	if strict && report.Failed > 0 {
		return errors.Errorf("%d of %d rows failed", report.Failed, report.Total)
	}

	return nil
}

func multipartBody(path string) (io.Reader, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(csvFileField, filepath.Base(path))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to build upload")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", errors.Wrapf(err, "failed to read %s", path)
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to build upload")
	}

	return &buf, writer.FormDataContentType(), nil
}
