// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/onosproject/kubejob/internal/job"
	"github.com/onosproject/kubejob/pkg/util"
	"github.com/onosproject/kubejob/pkg/util/random"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	corev1 "k8s.io/api/core/v1"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys
const EnvPrefix = "KUBEJOB"

// Configuration keys, shared by flags, environment variables and config files
const (
	NameKey          = "name"
	GenerateNameKey  = "generate-name"
	NamespaceKey     = "namespace"
	ContainerKey     = "container"
	ImageKey         = "image"
	CommandKey       = "command"
	RestartPolicyKey = "restart-policy"
	LabelKey         = "label"
	RetryIntervalKey = "retry-interval"
	MaxAttemptsKey   = "max-attempts"
	BackoffKey       = "backoff"
	TimeoutKey       = "timeout"
	NoTeardownKey    = "no-teardown"
	KubeconfigKey    = "kubeconfig"
	ContextKey       = "context"
)

// Config is the resolved configuration of a run
type Config struct {
	Name          string            `yaml:"name"`
	GenerateName  bool              `yaml:"generate-name"`
	Namespace     string            `yaml:"namespace"`
	Container     string            `yaml:"container"`
	Image         string            `yaml:"image"`
	Command       []string          `yaml:"command"`
	RestartPolicy string            `yaml:"restart-policy"`
	Labels        map[string]string `yaml:"label,omitempty"`
	RetryInterval time.Duration     `yaml:"-"`
	MaxAttempts   int               `yaml:"max-attempts"`
	Backoff       string            `yaml:"backoff"`
	Timeout       time.Duration     `yaml:"-"`
	NoTeardown    bool              `yaml:"no-teardown"`
	Kubeconfig    string            `yaml:"kubeconfig,omitempty"`
	Context       string            `yaml:"context,omitempty"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	defaultJob := job.Default()
	retry := job.DefaultRetryPolicy()
	return Config{
		Name:          defaultJob.Name,
		Namespace:     defaultJob.Namespace,
		Container:     defaultJob.Container,
		Image:         defaultJob.Image,
		Command:       defaultJob.Command,
		RestartPolicy: string(defaultJob.RestartPolicy),
		RetryInterval: retry.Interval,
		Backoff:       string(retry.Backoff),
	}
}

// AddFlags registers the configuration flags with their default values
func AddFlags(flags *pflag.FlagSet) {
	defaults := Default()
	flags.String(NameKey, defaults.Name, "the name of the pod")
	flags.Bool(GenerateNameKey, false, "append a random suffix to the pod name")
	flags.StringP(NamespaceKey, "n", defaults.Namespace, "the namespace in which to run the pod")
	flags.String(ContainerKey, defaults.Container, "the name of the pod's container")
	flags.StringP(ImageKey, "i", defaults.Image, "the container image to run")
	flags.StringSlice(CommandKey, defaults.Command, "the container command as comma-separated arguments; quote an argument containing a comma (--command 'sh,-c,\"echo a,b\"') or list the command in the config file")
	flags.String(RestartPolicyKey, defaults.RestartPolicy, "the pod restart policy (Never, OnFailure or Always)")
	flags.StringToStringP(LabelKey, "l", map[string]string{}, "labels to add to the pod")
	flags.Duration(RetryIntervalKey, defaults.RetryInterval, "the interval between attempts to stream logs from a pod that is not ready")
	flags.Int(MaxAttemptsKey, 0, "the maximum number of attempts to stream logs (0 retries forever)")
	flags.String(BackoffKey, defaults.Backoff, "the retry backoff strategy (constant or exponential)")
	flags.Duration(TimeoutKey, 0, "the maximum duration of the run (0 waits forever)")
	flags.Bool(NoTeardownKey, false, "do not delete the pod once it completes")
}

// Load resolves the configuration from flags, KUBEJOB_* environment variables and
// an optional YAML config file, in that order of precedence.
func Load(flags *pflag.FlagSet, file string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, errors.Wrap(err, "failed to bind flags")
	}

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}

	config := Config{
		Name:          v.GetString(NameKey),
		GenerateName:  v.GetBool(GenerateNameKey),
		Namespace:     v.GetString(NamespaceKey),
		Container:     v.GetString(ContainerKey),
		Image:         v.GetString(ImageKey),
		Command:       v.GetStringSlice(CommandKey),
		RestartPolicy: v.GetString(RestartPolicyKey),
		Labels:        getLabels(v),
		RetryInterval: v.GetDuration(RetryIntervalKey),
		MaxAttempts:   v.GetInt(MaxAttemptsKey),
		Backoff:       v.GetString(BackoffKey),
		Timeout:       v.GetDuration(TimeoutKey),
		NoTeardown:    v.GetBool(NoTeardownKey),
		Kubeconfig:    v.GetString(KubeconfigKey),
		Context:       v.GetString(ContextKey),
	}
	if config.GenerateName {
		config.Name = random.WithSuffix(config.Name)
		config.GenerateName = false
	}
	return config, config.Validate()
}

// getLabels reads labels given either as a map (flags, config files) or as a
// "key=value,key=value" string (environment)
func getLabels(v *viper.Viper) map[string]string {
	labels := v.GetStringMapString(LabelKey)
	if len(labels) == 0 {
		labels = util.SplitMap(v.GetString(LabelKey))
	}
	if len(labels) == 0 {
		return nil
	}
	return labels
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	switch {
	case c.Name == "":
		return errors.New("name cannot be empty")
	case c.Namespace == "":
		return errors.New("namespace cannot be empty")
	case c.Container == "":
		return errors.New("container cannot be empty")
	case c.Image == "":
		return errors.New("image cannot be empty")
	case len(c.Command) == 0:
		return errors.New("command cannot be empty")
	case c.RetryInterval <= 0:
		return errors.New("retry-interval must be positive")
	case c.MaxAttempts < 0:
		return errors.New("max-attempts cannot be negative")
	case c.Timeout < 0:
		return errors.New("timeout cannot be negative")
	}

	switch corev1.RestartPolicy(c.RestartPolicy) {
	case corev1.RestartPolicyNever, corev1.RestartPolicyOnFailure, corev1.RestartPolicyAlways:
	default:
		return fmt.Errorf("unknown restart-policy %q", c.RestartPolicy)
	}

	switch job.Backoff(c.Backoff) {
	case job.BackoffConstant:
	case job.BackoffExponential:
		if c.RetryInterval < job.MinExponentialInterval {
			return fmt.Errorf("exponential backoff requires a retry-interval of at least %s", job.MinExponentialInterval)
		}
		if c.RetryInterval%time.Second != 0 {
			return fmt.Errorf("exponential backoff requires a retry-interval in whole seconds, got %s", c.RetryInterval)
		}
	default:
		return fmt.Errorf("unknown backoff %q", c.Backoff)
	}
	return nil
}

// Job returns the job described by the configuration
func (c Config) Job() job.Job {
	return job.Job{
		Name:          c.Name,
		Namespace:     c.Namespace,
		Container:     c.Container,
		Image:         c.Image,
		Command:       c.Command,
		RestartPolicy: corev1.RestartPolicy(c.RestartPolicy),
		Labels:        c.Labels,
	}
}

// RetryPolicy returns the policy used to reopen the log stream
func (c Config) RetryPolicy() job.RetryPolicy {
	return job.RetryPolicy{
		Interval:    c.RetryInterval,
		MaxAttempts: c.MaxAttempts,
		Backoff:     job.Backoff(c.Backoff),
	}
}

// YAML renders the configuration as YAML
func (c Config) YAML() ([]byte, error) {
	type view struct {
		Config        `yaml:",inline"`
		RetryInterval string `yaml:"retry-interval"`
		Timeout       string `yaml:"timeout"`
	}
	return yaml.Marshal(view{
		Config:        c,
		RetryInterval: c.RetryInterval.String(),
		Timeout:       c.Timeout.String(),
	})
}
