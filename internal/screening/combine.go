package screening

import "fmt"

// PartyReport pairs a screened person with their report.
type PartyReport struct {
	Role           string `json:"role"`
	Identification string `json:"identification"`
	FullName       string `json:"full_name"`
	Report         Report `json:"report"`
}

// SourceVerdict is the merged per-source outcome across both parties.
type SourceVerdict struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// CombinedReport is the two-party verification result.
type CombinedReport struct {
	Seller  PartyReport              `json:"seller"`
	Buyer   PartyReport              `json:"buyer"`
	Sources map[string]SourceVerdict `json:"sources"`
	Status  Status                   `json:"status"`
}

// CombineReports merges a seller and a buyer report per source: a source is
// MATCH when either party matched on it, ERROR when either side errored
// without a match, CLEAN otherwise.
func CombineReports(seller, buyer PartyReport) CombinedReport {
	sources := make(map[string]SourceVerdict)
	for key := range seller.Report {
		sources[key] = combineSource(key, seller, buyer)
	}
	for key := range buyer.Report {
		if _, done := sources[key]; !done {
			sources[key] = combineSource(key, seller, buyer)
		}
	}

	status := StatusClean
	for _, verdict := range sources {
		switch verdict.Status {
		case StatusMatch:
			status = StatusMatch
		case StatusError:
			if status != StatusMatch {
				status = StatusError
			}
		}
	}

	return CombinedReport{
		Seller:  seller,
		Buyer:   buyer,
		Sources: sources,
		Status:  status,
	}
}

func combineSource(key string, seller, buyer PartyReport) SourceVerdict {
	sellerResult := seller.Report[key]
	buyerResult := buyer.Report[key]

	var matched []string
	if sellerResult.Status == StatusMatch {
		matched = append(matched, fmt.Sprintf("%s (%s)", seller.Role, seller.FullName))
	}
	if buyerResult.Status == StatusMatch {
		matched = append(matched, fmt.Sprintf("%s (%s)", buyer.Role, buyer.FullName))
	}
	if len(matched) > 0 {
		message := "watchlist match for " + matched[0]
		if len(matched) == 2 {
			message += " and " + matched[1]
		}
		return SourceVerdict{Status: StatusMatch, Message: message}
	}

	if sellerResult.Status == StatusError || buyerResult.Status == StatusError {
		return SourceVerdict{Status: StatusError, Message: "source unavailable for at least one party"}
	}
	return SourceVerdict{Status: StatusClean}
}
