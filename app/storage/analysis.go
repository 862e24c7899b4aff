package storage

import "github.com/lysyi3m/venture-watch/app/analyzer"

func (s *Store) SaveAnalysis(profiles []analyzer.CompanyProfile) error {
	return s.write(analysisFile, profiles)
}

func (s *Store) LoadAnalysis() ([]analyzer.CompanyProfile, error) {
	var profiles []analyzer.CompanyProfile
	if err := s.read(analysisFile, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
