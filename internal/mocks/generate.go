package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerStatsProvider --dir ../usecase --output usecase --outpkg usecasemock --filename player_stats_provider_mock.go
