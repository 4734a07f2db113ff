package phy

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	It("should match configuration errors through wrapping", func() {
		err := fmt.Errorf("creating transmission: %w",
			NewConfigurationError("ModeTable", "undefined mode %q", "99Mbps"))

		Expect(errors.Is(err, ErrConfiguration)).To(BeTrue())
		Expect(errors.Is(err, ErrCapability)).To(BeFalse())
		Expect(err.Error()).To(Equal(
			`creating transmission: configuration error in ModeTable: ` +
				`undefined mode "99Mbps"`))

		var cfgErr *ConfigurationError
		Expect(errors.As(err, &cfgErr)).To(BeTrue())
		Expect(cfgErr.Component).To(Equal("ModeTable"))
	})

	It("should match capability errors", func() {
		err := NewCapabilityError("Radio", "%d streams, %d antennas", 2, 1)

		Expect(err).To(MatchError(ErrCapability))
		Expect(errors.Is(err, ErrConfiguration)).To(BeFalse())
	})
})
