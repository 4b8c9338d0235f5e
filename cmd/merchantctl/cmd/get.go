package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"serviceability/internal/domain/entity"
	"serviceability/internal/errors"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <merchant-id>",
		Short: "Show one merchant with its serviced pincodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Context(), cmd, opts, args[0])
		},
	}
}

func runGet(ctx context.Context, cmd *cobra.Command, opts *globalOptions, rawID string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	id, err := entity.ParseMerchantID(rawID)
	if err != nil {
		return errors.Errorf("invalid merchant id %q", rawID)
	}

	var merchant entity.Merchant
	raw, err := opts.client().do(ctx, http.MethodGet, fmt.Sprintf("/merchants/%d", id), nil, "", nil, &merchant)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return printJSON(out, raw)
	}

	pincodes := "none"
	if len(merchant.Pincodes) > 0 {
		pincodes = strings.Join(merchant.Pincodes, ", ")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", merchant.ID)
	fmt.Fprintf(w, "Name:\t%s\n", merchant.Name)
	fmt.Fprintf(w, "Category:\t%s\n", merchant.BusinessCategory)
	fmt.Fprintf(w, "Phone:\t%s\n", merchant.PhoneNumber)
	fmt.Fprintf(w, "Email:\t%s\n", merchant.Email)
	fmt.Fprintf(w, "Pincodes:\t%s\n", pincodes)
	fmt.Fprintf(w, "Created:\t%s\n", merchant.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Updated:\t%s\n", merchant.UpdatedAt.Format(time.RFC3339))

	return w.Flush()
}
