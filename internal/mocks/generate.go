package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/event --output domain/event --outpkg eventmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/team --output domain/team --outpkg teammock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/award --output domain/award --outpkg awardmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/ranking --output domain/ranking --outpkg rankingmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/alliance --output domain/alliance --outpkg alliancemock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/highscore --output domain/highscore --outpkg highscoremock --filename repository_mock.go
