package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/parameters"
)

// ssmAPI is the subset of the SSM client keez uses.
type ssmAPI interface {
	ssm.GetParametersByPathAPIClient
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
}

// SSMGateway talks to AWS Systems Manager Parameter Store.
type SSMGateway struct {
	client ssmAPI
}

// AWSOptions selects the credentials profile and region.
// Empty fields fall back to the SDK's default resolution chain.
type AWSOptions struct {
	Profile string
	Region  string
}

// NewSSMGateway builds a gateway from the shared AWS configuration.
func NewSSMGateway(ctx context.Context, opts AWSOptions) (*SSMGateway, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading AWS configuration: %v", kerrors.ErrGateway, err)
	}

	return &SSMGateway{client: ssm.NewFromConfig(cfg)}, nil
}

// GetByPrefix implements Gateway.
func (g *SSMGateway) GetByPrefix(ctx context.Context, prefix string, withDecryption, recursive bool) ([]RawParameter, error) {
	paginator := ssm.NewGetParametersByPathPaginator(g.client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(withDecryption),
		Recursive:      aws.Bool(recursive),
	})

	var out []RawParameter
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: listing parameters under %s: %s", kerrors.ErrGateway, prefix, describeAPIError(err))
		}
		for _, p := range page.Parameters {
			out = append(out, RawParameter{
				Name:  aws.ToString(p.Name),
				Value: aws.ToString(p.Value),
				Type:  string(p.Type),
			})
		}
	}

	return out, nil
}

// Put implements Gateway.
func (g *SSMGateway) Put(ctx context.Context, name, value string, paramType parameters.Type, overwrite bool) error {
	_, err := g.client.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(name),
		Value:     aws.String(value),
		Type:      types.ParameterType(paramType.String()),
		Overwrite: aws.Bool(overwrite),
	})
	if err == nil {
		return nil
	}

	var exists *types.ParameterAlreadyExists
	if errors.As(err, &exists) {
		return &kerrors.KeyError{Key: name, Err: fmt.Errorf("%w: %w", kerrors.ErrGateway, kerrors.ErrParameterExists)}
	}
	return &kerrors.KeyError{Key: name, Err: fmt.Errorf("%w: %s", kerrors.ErrGateway, describeAPIError(err))}
}

// describeAPIError reduces an SDK error to the service's error code and
// message when it carries one.
func describeAPIError(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()
	}
	return err.Error()
}
