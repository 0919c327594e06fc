package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seap-dev/subscription-api/internal/domain"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "simple", raw: "test@gmail.com", want: "test@gmail.com"},
		{name: "digits and specials in local part", raw: "user.name+tag%42@sub.domain.org", want: "user.name+tag%42@sub.domain.org"},
		{name: "two letter tld", raw: "a@b.de", want: "a@b.de"},
		{name: "four letter tld", raw: "a@b.info", want: "a@b.info"},
		{name: "surrounding whitespace is trimmed", raw: "  test@test.test \n", want: "test@test.test"},
		{name: "missing at sign", raw: "testgmail.com", wantErr: true},
		{name: "missing tld", raw: "test@gmail", wantErr: true},
		{name: "tld too short", raw: "test@gmail.c", wantErr: true},
		{name: "tld too long", raw: "test@gmail.museum", wantErr: true},
		{name: "uppercase local part", raw: "Test@gmail.com", wantErr: true},
		{name: "uppercase domain", raw: "test@Gmail.com", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "inner whitespace", raw: "te st@gmail.com", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ValidateEmail(tc.raw)

			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrValidation))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
