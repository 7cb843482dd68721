package app

import (
	"fmt"
	"sync"

	accountHTTP "github.com/setlistify/setlistify/internal/account/http"
	accountRepository "github.com/setlistify/setlistify/internal/account/repository"
	accountService "github.com/setlistify/setlistify/internal/account/service"
	accountUsecase "github.com/setlistify/setlistify/internal/account/usecase"
)

// accountComponents groups the account module dependencies.
type accountComponents struct {
	userRepo     accountUsecase.UserRepository
	otpRepo      accountUsecase.OtpRepository
	otpGenerator accountService.OtpGenerator
	mailer       accountService.Mailer
	useCase      accountUsecase.UseCase
	handler      *accountHTTP.AccountHandler

	userRepoInit     sync.Once
	otpRepoInit      sync.Once
	otpGeneratorInit sync.Once
	mailerInit       sync.Once
	useCaseInit      sync.Once
	handlerInit      sync.Once
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (accountUsecase.UserRepository, error) {
	c.account.userRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		// Select the appropriate repository based on the database driver
		switch c.config.DBDriver {
		case "mysql":
			c.account.userRepo = accountRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.account.userRepo = accountRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.account.userRepo, nil
}

// OtpRepository returns the password-reset code repository instance.
func (c *Container) OtpRepository() (accountUsecase.OtpRepository, error) {
	c.account.otpRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["otpRepo"] = fmt.Errorf("failed to get database for otp repository: %w", err)
			return
		}

		// Select the appropriate repository based on the database driver
		switch c.config.DBDriver {
		case "mysql":
			c.account.otpRepo = accountRepository.NewMySQLOtpRepository(db)
		case "postgres":
			c.account.otpRepo = accountRepository.NewPostgreSQLOtpRepository(db)
		default:
			c.initErrors["otpRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["otpRepo"]; exists {
		return nil, storedErr
	}
	return c.account.otpRepo, nil
}

// OtpGenerator returns the numeric reset-code generator.
func (c *Container) OtpGenerator() accountService.OtpGenerator {
	c.account.otpGeneratorInit.Do(func() {
		c.account.otpGenerator = accountService.NewOtpGenerator()
	})
	return c.account.otpGenerator
}

// Mailer returns the password-reset mailer. Without an SMTP relay configured
// it falls back to the log mailer, which only records the code.
func (c *Container) Mailer() accountService.Mailer {
	c.account.mailerInit.Do(func() {
		if c.config.SMTPAddr == "" {
			c.account.mailer = accountService.NewLogMailer(c.Logger())
			return
		}
		c.account.mailer = accountService.NewSMTPMailer(
			c.config.SMTPAddr,
			c.config.MailFrom,
			c.config.SMTPTimeout,
		)
	})
	return c.account.mailer
}

// AccountUseCase returns the account use case instance.
func (c *Container) AccountUseCase() (accountUsecase.UseCase, error) {
	c.account.useCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["accountUseCase"] = fmt.Errorf("failed to get tx manager for account use case: %w", err)
			return
		}

		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["accountUseCase"] = fmt.Errorf("failed to get user repository for account use case: %w", err)
			return
		}

		otpRepo, err := c.OtpRepository()
		if err != nil {
			c.initErrors["accountUseCase"] = fmt.Errorf("failed to get otp repository for account use case: %w", err)
			return
		}

		useCase, err := accountUsecase.NewAccountUseCase(
			txManager,
			userRepo,
			otpRepo,
			c.OtpGenerator(),
			c.Mailer(),
			c.config.OTPExpiration,
		)
		if err != nil {
			c.initErrors["accountUseCase"] = fmt.Errorf("failed to create account use case: %w", err)
			return
		}
		c.account.useCase = useCase
	})
	if storedErr, exists := c.initErrors["accountUseCase"]; exists {
		return nil, storedErr
	}
	return c.account.useCase, nil
}

// AccountHandler returns the account HTTP handler.
func (c *Container) AccountHandler() (*accountHTTP.AccountHandler, error) {
	c.account.handlerInit.Do(func() {
		useCase, err := c.AccountUseCase()
		if err != nil {
			c.initErrors["accountHandler"] = err
			return
		}
		c.account.handler = accountHTTP.NewAccountHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["accountHandler"]; exists {
		return nil, storedErr
	}
	return c.account.handler, nil
}
