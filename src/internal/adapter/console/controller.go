package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/api-sage/account-ledger/src/internal/adapter/console/models"
	"github.com/api-sage/account-ledger/src/internal/logger"
	"github.com/api-sage/account-ledger/src/internal/usecase/service_interfaces"
	"github.com/google/uuid"
)

const menu = "1. Add Account\n2. Deposit\n3. Withdraw\n4. Display Account\n5. Calculate Interest\n6. Exit\n"

// Controller is the operator's menu loop. It owns no ledger state; every
// choice is one service call followed by one printed outcome.
type Controller struct {
	accountService  service_interfaces.AccountService
	interestService service_interfaces.InterestService
	bankName        string
	currency        string
	in              *bufio.Reader
	out             io.Writer
}

func NewController(
	accountService service_interfaces.AccountService,
	interestService service_interfaces.InterestService,
	bankName string,
	currency string,
	in io.Reader,
	out io.Writer,
) *Controller {
	return &Controller{
		accountService:  accountService,
		interestService: interestService,
		bankName:        strings.TrimSpace(bankName),
		currency:        currency,
		in:              bufio.NewReader(in),
		out:             out,
	}
}

// Run prints the menu and dispatches choices until the operator exits or
// input ends. Ledger failures are reported and never end the loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.printf("%s", menu)
		choice, err := c.prompt("Choose an option: ")
		if err != nil {
			return c.inputEnded(err)
		}

		choice = strings.TrimSpace(choice)
		opID := uuid.NewString()
		logger.Info("console dispatch", logger.Fields{
			"operationId": opID,
			"option":      choice,
		})

		switch choice {
		case "1":
			err = c.addAccount(ctx, opID)
		case "2":
			err = c.deposit(ctx, opID)
		case "3":
			err = c.withdraw(ctx, opID)
		case "4":
			err = c.display(ctx, opID)
		case "5":
			err = c.interest(ctx, opID)
		case "6":
			c.printf("👋 Exiting. Thank you for using %s Bank system.\n", c.bankName)
			logger.Info("console exit", logger.Fields{"operationId": opID})
			return nil
		default:
			c.printf("❌ Invalid option. Try again.\n\n")
		}

		if err != nil {
			return c.inputEnded(err)
		}
	}
}

func (c *Controller) addAccount(ctx context.Context, opID string) error {
	fields, err := c.promptAll(
		"Enter account holder name: ",
		"Enter account number: ",
		"Enter initial deposit amount: ",
	)
	if err != nil {
		return err
	}

	resp, err := c.accountService.CreateAccount(ctx, models.CreateAccountRequest{
		HolderName:     fields[0],
		AccountNumber:  fields[1],
		InitialDeposit: fields[2],
	})
	if c.reportFailure(opID, resp.Message, resp.ValidationDetail(), err) {
		return nil
	}

	c.printf("\n✅ Account created successfully for %s (A/C No: %s) with %s balance.\n\n",
		resp.Data.HolderName, resp.Data.AccountNumber, c.money(resp.Data.Balance))
	return nil
}

func (c *Controller) deposit(ctx context.Context, opID string) error {
	fields, err := c.promptAll("Enter account number: ", "Enter amount to deposit: ")
	if err != nil {
		return err
	}

	resp, err := c.accountService.DepositFunds(ctx, models.DepositFundsRequest{
		AccountNumber: fields[0],
		Amount:        fields[1],
	})
	if c.reportFailure(opID, resp.Message, resp.ValidationDetail(), err) {
		return nil
	}

	c.printf("✅ %s deposited. Updated balance: %s\n\n",
		c.money(resp.Data.DepositedAmount), c.money(resp.Data.Balance))
	return nil
}

func (c *Controller) withdraw(ctx context.Context, opID string) error {
	fields, err := c.promptAll("Enter account number: ", "Enter amount to withdraw: ")
	if err != nil {
		return err
	}

	resp, err := c.accountService.WithdrawFunds(ctx, models.WithdrawFundsRequest{
		AccountNumber: fields[0],
		Amount:        fields[1],
	})
	if c.reportFailure(opID, resp.Message, resp.ValidationDetail(), err) {
		return nil
	}

	c.printf("✅ %s withdrawn. Remaining balance: %s\n\n",
		c.money(resp.Data.WithdrawnAmount), c.money(resp.Data.Balance))
	return nil
}

func (c *Controller) display(ctx context.Context, opID string) error {
	accountNumber, err := c.prompt("Enter account number: ")
	if err != nil {
		return err
	}

	resp, err := c.accountService.GetAccount(ctx, accountNumber)
	if c.reportFailure(opID, resp.Message, resp.ValidationDetail(), err) {
		return nil
	}

	c.printf("📄 Account Summary\nName: %s\nAccount No: %s\nBalance: %s\n\n",
		resp.Data.HolderName, resp.Data.AccountNumber, c.money(resp.Data.Balance))
	return nil
}

func (c *Controller) interest(ctx context.Context, opID string) error {
	accountNumber, err := c.prompt("Enter account number: ")
	if err != nil {
		return err
	}

	resp, err := c.interestService.CalculateInterest(ctx, accountNumber)
	if c.reportFailure(opID, resp.Message, resp.ValidationDetail(), err) {
		return nil
	}

	c.printf("💹 Interest for %s at %s%% is %s\n\n",
		resp.Data.HolderName, resp.Data.Rate.String(), c.money(resp.Data.Interest))
	return nil
}

// inputEnded turns a closed input stream into a clean stop. Any other read
// error is returned to the caller.
func (c *Controller) inputEnded(err error) error {
	if errors.Is(err, io.EOF) {
		logger.Info("console input closed", nil)
		return nil
	}
	logger.Error("console read failed", err, nil)
	return err
}
