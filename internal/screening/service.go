package screening

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartyInput identifies one person to screen.
type PartyInput struct {
	Role           string
	Identification string
	FullName       string
}

// VerifyParties screens both sides of an operation concurrently and merges
// the reports. Both verifications share the caller's context; the cache
// decorator (when wired) applies to each party independently.
func VerifyParties(ctx context.Context, verifier Verifier, seller, buyer PartyInput) (CombinedReport, error) {
	var sellerReport, buyerReport Report

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report, err := verifier.Verify(ctx, seller.Identification, seller.FullName)
		if err != nil {
			return err
		}
		sellerReport = report
		return nil
	})
	g.Go(func() error {
		report, err := verifier.Verify(ctx, buyer.Identification, buyer.FullName)
		if err != nil {
			return err
		}
		buyerReport = report
		return nil
	})
	if err := g.Wait(); err != nil {
		return CombinedReport{}, err
	}

	return CombineReports(
		PartyReport{Role: seller.Role, Identification: seller.Identification, FullName: seller.FullName, Report: sellerReport},
		PartyReport{Role: buyer.Role, Identification: buyer.Identification, FullName: buyer.FullName, Report: buyerReport},
	), nil
}
