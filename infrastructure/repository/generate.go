package repository

//go:generate mockgen -source=company.go -destination=mocks/company.go -package=mocks
//go:generate mockgen -source=period.go -destination=mocks/period.go -package=mocks
//go:generate mockgen -source=statement.go -destination=mocks/statement.go -package=mocks
//go:generate mockgen -source=ratio_result.go -destination=mocks/ratio_result.go -package=mocks
//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks
//go:generate mockgen -source=app_config.go -destination=mocks/app_config.go -package=mocks
//go:generate mockgen -source=column_config.go -destination=mocks/column_config.go -package=mocks
