package common

const (
	ComponentSearchClient = "search-client"
	ComponentBlockFetcher = "block-fetcher"
	ComponentExtractor    = "extractor"
	ComponentDetector     = "detector"
	ComponentAnalyzer     = "analyzer"
	ComponentReportStore  = "report-store"
	ComponentAPI          = "api"
)

var AllComponents = map[string]struct{}{
	ComponentSearchClient: {},
	ComponentBlockFetcher: {},
	ComponentExtractor:    {},
	ComponentDetector:     {},
	ComponentAnalyzer:     {},
	ComponentReportStore:  {},
	ComponentAPI:          {},
}
