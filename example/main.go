// Package main demonstrates usage of the scg-adapter package.
package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/next-trace/scg-adapter/adapter"
)

// quota is a plain value type: it prints nicely but is not an error.
type quota struct {
	Tenant string
	Limit  int
}

func (q quota) String() string {
	return "quota exceeded for " + q.Tenant + " (limit " + strconv.Itoa(q.Limit) + ")"
}

func (q quota) GoString() string {
	return fmt.Sprintf("quota{Tenant:%q, Limit:%d}", q.Tenant, q.Limit)
}

func reserve(tenant string, n int) error {
	q := quota{Tenant: tenant, Limit: 10}
	if n > q.Limit {
		return fmt.Errorf("reserve %d slots: %w", n, adapter.Err(q))
	}

	return nil
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	// Box a value that has no Error method and log it like any other error
	err := reserve("acme", 42)
	log.WithError(err).Warn("reservation rejected")

	// Debug form names the wrapper
	log.WithField("debug", fmt.Sprintf("%#v", adapter.New(quota{Tenant: "acme", Limit: 10}))).Info("debug rendering")

	// Recover the original value from the chain
	if q, ok := adapter.As[quota](err); ok {
		log.WithFields(logrus.Fields{"tenant": q.Tenant, "limit": q.Limit}).Info("recovered quota")
	}

	// Adapters hash like the value they hold
	h, herr := adapter.New(quota{Tenant: "acme", Limit: 10}).Hash()
	if herr != nil {
		log.WithError(herr).Fatal("hash failed")
	}

	log.WithField("hash", h).Info("structural hash")
}
