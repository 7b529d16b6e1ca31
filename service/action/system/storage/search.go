package storage

import (
	"context"
	"strings"
)

// SearchInput defines a case-insensitive name search within one directory
type SearchInput struct {
	URL     string `json:"url" required:"true" description:"directory to search"`
	Keyword string `json:"keyword" required:"true" description:"name fragment"`
}

// SearchOutput contains matched entries
type SearchOutput struct {
	Assets []*Asset `json:"assets,omitempty"`
}

// Search matches entry names of URL against keyword; contents and subdirectories are not searched
func (s *Service) Search(ctx context.Context, input *SearchInput, output *SearchOutput) error {
	listed := &ListOutput{}
	if err := s.List(ctx, &ListInput{URL: input.URL}, listed); err != nil {
		return err
	}
	keyword := strings.ToLower(input.Keyword)
	for _, asset := range listed.Assets {
		if strings.Contains(strings.ToLower(asset.Name), keyword) {
			output.Assets = append(output.Assets, asset)
		}
	}
	return nil
}
