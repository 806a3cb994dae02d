package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/catalog --output domain/catalog --outpkg catalogmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SnapshotSource --dir ../usecase --output usecase --outpkg usecasemock --filename snapshot_source_mock.go
