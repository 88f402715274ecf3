package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/api-sage/account-ledger/src/internal/commons"
	"github.com/api-sage/account-ledger/src/internal/logger"
	"github.com/shopspring/decimal"
)

// prompt reads one line of any length. A final line without a newline is
// still returned; io.EOF comes on the next call.
func (c *Controller) prompt(label string) (string, error) {
	c.printf("%s", label)
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Controller) promptAll(labels ...string) ([]string, error) {
	values := make([]string, 0, len(labels))
	for _, label := range labels {
		value, err := c.prompt(label)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// reportFailure prints the operator-facing outcome for a failed service call
// and reports whether there was one.
func (c *Controller) reportFailure(opID string, message string, validation string, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, commons.ErrAccountExists):
		c.printf("❌ Account number already exists.\n\n")
	case errors.Is(err, commons.ErrRecordNotFound):
		c.printf("❌ Account not found.\n\n")
	case errors.Is(err, commons.ErrInsufficientBalance):
		c.printf("❌ Insufficient balance!\n\n")
	case validation != "":
		c.printf("❌ %s\n\n", validation)
	default:
		logger.Error("console operation failed", err, logger.Fields{
			"operationId": opID,
			"message":     message,
		})
		c.printf("❌ Unable to complete request right now.\n\n")
	}
	return true
}

func (c *Controller) money(amount decimal.Decimal) string {
	return c.currency + amount.StringFixed(2)
}

func (c *Controller) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
