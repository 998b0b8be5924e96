package ask

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DefaultPageSize is the number of suggestions shown at once.
const DefaultPageSize = 7

// frameChromeRows is the number of frame rows that are not suggestions.
const frameChromeRows = 3

// DefaultHelpMessage is shown under the suggestions when no help message is
// configured.
const DefaultHelpMessage = "↑↓ to move, tab to auto-complete, enter to submit"

// Prompt asks one question and reads a single line of text.
type Prompt struct {
	config         Config
	terminal       terminalInterface
	renderer       *renderer
	keyMap         *KeyMap
	dispatcher     *Dispatcher[State]
	historyManager *HistoryManager
	logger         *log.Logger
	state          State
	pageSize       int
}

// KeyBinding attaches a callback to one or more guards. See WithKeyBinding.
type KeyBinding struct {
	Guards   []Guard[State]
	Callback func(*State)
}

// Config holds the configuration for a prompt.
type Config struct {
	Message       string         // Question shown to the user
	Default       string         // Returned when the input is empty (empty = no default)
	HelpMessage   string         // Help row; falls back to DefaultHelpMessage when suggestions exist
	Validators    []Validator    // Checked in order on submit, first failure wins
	Formatter     Formatter      // Display form of the accepted answer (nil = DefaultFormatter)
	Suggester     Suggester      // Candidate source (nil = none, or history when enabled)
	PageSize      int            // Suggestions per page (0 = DefaultPageSize)
	ColorScheme   *ColorScheme   // Color scheme (nil = ThemeDefault)
	KeyMap        *KeyMap        // Raw input decoding (nil = NewDefaultKeyMap)
	KeyBindings   []KeyBinding   // Extra shortcuts over the session state
	HistoryConfig *HistoryConfig // Answer history (nil = disabled)
	Logger        *log.Logger    // Diagnostics logger (nil = warnings to stderr)
	Output        io.Writer      // Where frames are painted (nil = the terminal)
}

// Option represents a configuration option for a prompt
type Option func(*Config)

// WithDefault sets the answer used when the input is empty on submit.
func WithDefault(value string) Option {
	return func(c *Config) {
		c.Default = value
	}
}

// WithHelpMessage sets the help row.
func WithHelpMessage(message string) Option {
	return func(c *Config) {
		c.HelpMessage = message
	}
}

// WithValidator appends a validator to the chain.
func WithValidator(validator Validator) Option {
	return func(c *Config) {
		c.Validators = append(c.Validators, validator)
	}
}

// WithValidators appends validators to the chain.
func WithValidators(validators ...Validator) Option {
	return func(c *Config) {
		c.Validators = append(c.Validators, validators...)
	}
}

// WithFormatter sets the formatter of the final answer line.
func WithFormatter(formatter Formatter) Option {
	return func(c *Config) {
		c.Formatter = formatter
	}
}

// WithSuggester sets the suggestion source.
func WithSuggester(suggester Suggester) Option {
	return func(c *Config) {
		c.Suggester = suggester
	}
}

// WithPageSize sets how many suggestions are shown at once.
func WithPageSize(size int) Option {
	return func(c *Config) {
		c.PageSize = size
	}
}

// WithColorScheme sets the color scheme.
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithKeyMap sets the raw input decoding.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithKeyBinding runs callback whenever key is pressed. When a binding fires
// for a key, the key is not passed on to the edit buffer.
//
// Example:
//
//	// Ctrl+L clears the input
//	ask.WithKeyBinding(ask.CtrlKey('l'), func(s *ask.State) {
//		s.SetContent("")
//	})
func WithKeyBinding(key Key, callback func(*State)) Option {
	return WithGuardedKeyBinding([]Guard[State]{NewGuard[State](key, nil)}, callback)
}

// WithGuardedKeyBinding runs callback once for every guard that matches a
// key press.
func WithGuardedKeyBinding(guards []Guard[State], callback func(*State)) Option {
	return func(c *Config) {
		c.KeyBindings = append(c.KeyBindings, KeyBinding{Guards: guards, Callback: callback})
	}
}

// WithHistory records accepted answers. When no suggester is configured,
// previous answers are offered as suggestions.
//
// Example:
//
//	ask.New("Server?", ask.WithHistory(&ask.HistoryConfig{
//		Enabled: true,
//		File:    "~/.myapp_servers",
//	}))
func WithHistory(historyConfig *HistoryConfig) Option {
	return func(c *Config) {
		c.HistoryConfig = historyConfig
	}
}

// WithFileHistory is a convenience function for history with file persistence.
func WithFileHistory(file string, maxEntries int) Option {
	return func(c *Config) {
		c.HistoryConfig = &HistoryConfig{
			Enabled:    true,
			MaxEntries: maxEntries,
			File:       file,
			MaxBackups: defaultHistoryBackups,
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithOutput paints the prompt on w instead of the terminal.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// New creates a prompt for message on the controlling terminal.
//
// Example:
//
//	p, err := ask.New("What's your name?",
//		ask.WithDefault("anonymous"),
//		ask.WithValidator(ask.MaxLength(20, "")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	name, err := p.Run()
func New(message string, options ...Option) (*Prompt, error) {
	config := Config{Message: message}
	for _, option := range options {
		option(&config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, err
	}

	p, err := newFromConfig(config, terminal)
	if err != nil {
		terminal.Close()
		return nil, err
	}
	return p, nil
}

// Ask creates a prompt, runs it once and closes it.
func Ask(message string, options ...Option) (string, error) {
	p, err := New(message, options...)
	if err != nil {
		return "", err
	}
	answer, err := p.Run()
	return answer, errors.Join(err, p.Close())
}

// AskMany runs prompts in order and returns their answers. It stops at the
// first error and returns the answers collected so far.
func AskMany(prompts ...*Prompt) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, p := range prompts {
		answer, err := p.Run()
		if err != nil {
			return answers, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (c *Config) validate() error {
	if c.PageSize < 0 {
		return configError("page size must not be negative, got %d", c.PageSize)
	}
	for i, v := range c.Validators {
		if v == nil {
			return configError("validator %d is nil", i)
		}
	}
	for i, b := range c.KeyBindings {
		if b.Callback == nil || len(b.Guards) == 0 {
			return configError("key binding %d needs a callback and at least one guard", i)
		}
	}
	if c.HistoryConfig != nil && c.HistoryConfig.MaxEntries < 0 {
		return configError("history max entries must not be negative, got %d", c.HistoryConfig.MaxEntries)
	}
	return nil
}

func newFromConfig(config Config, terminal terminalInterface) (*Prompt, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.Formatter == nil {
		config.Formatter = DefaultFormatter
	}
	if config.PageSize == 0 {
		config.PageSize = DefaultPageSize
	}
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "ask",
			Level:  log.WarnLevel,
		})
	}
	if config.Output == nil {
		config.Output = terminal.Output()
	}

	p := &Prompt{
		config:   config,
		terminal: terminal,
		renderer: newRenderer(config.Output, config.ColorScheme),
		keyMap:   config.KeyMap,
		logger:   config.Logger,
	}

	if config.HistoryConfig != nil && config.HistoryConfig.Enabled {
		p.historyManager = NewHistoryManager(config.HistoryConfig)
		if err := p.historyManager.LoadHistory(); err != nil {
			p.logger.Warn("failed to load history", "file", p.historyManager.File(), "err", err)
		}
		if p.config.Suggester == nil {
			p.config.Suggester = NewHistorySuggester(p.historyManager)
		}
	}

	p.dispatcher = NewDispatcher[State]()
	p.dispatcher.AddEvent(NewGuard(Tab, (*State).hasHighlighted), (*State).useHighlighted)
	p.dispatcher.AddEvent(NewGuard[State](Up, nil), func(s *State) { s.MoveHighlighted(-1) })
	p.dispatcher.AddEvent(NewGuard[State](Down, nil), func(s *State) { s.MoveHighlighted(1) })
	for _, b := range config.KeyBindings {
		p.dispatcher.AddEventGuards(b.Guards, b.Callback)
	}

	return p, nil
}

// History returns the answer history, or nil when history is disabled.
func (p *Prompt) History() *HistoryManager {
	return p.historyManager
}

// Run shows the prompt and blocks until the user submits a valid answer,
// cancels with Esc (ErrOperationCanceled) or interrupts with Ctrl+C
// (ErrOperationInterrupted).
//
// On submit the answer is the input text, or the default when the input is
// empty. Validators see that same value; a rejection is shown above the
// prompt and the user keeps editing the text as it was. Any terminal read or
// write failure ends the session with an error matching ErrIO.
func (p *Prompt) Run() (string, error) {
	if err := p.terminal.SetRaw(); err != nil {
		return "", err
	}
	defer func() {
		if err := p.terminal.Restore(); err != nil {
			p.logger.Warn("failed to restore terminal state", "err", err)
		}
	}()

	p.state = newState(p.config.Message, p.config.Suggester)
	p.pageSize = p.config.PageSize
	p.renderer.begin()
	if width, height, err := p.terminal.Size(); err == nil {
		p.renderer.resize(width)
		// Keep the frame within the terminal: the error, prompt and help
		// rows always need room.
		if height > frameChromeRows {
			p.pageSize = min(p.pageSize, height-frameChromeRows)
		}
	}
	p.logger.Debug("prompt started", "message", p.config.Message, "suggestions", len(p.state.suggestions))

	for {
		if err := p.render(); err != nil {
			return "", err
		}

		key, err := p.keyMap.ReadKey(p.terminal)
		if err != nil {
			return "", ioError("read key", err)
		}

		switch key.Code {
		case KeyCancel:
			return "", p.abort(ErrOperationCanceled)
		case KeyInterrupt:
			return "", p.abort(ErrOperationInterrupted)
		case KeySubmit:
			answer, err := p.finalAnswer()
			if err != nil {
				p.state.errMsg = err.Error()
				p.logger.Debug("answer rejected", "reason", p.state.errMsg)
				continue
			}
			return p.accept(answer)
		default:
			p.onChange(key)
		}
	}
}

// Close saves the history and releases the terminal. It is safe to call
// Close more than once.
func (p *Prompt) Close() error {
	if p.historyManager != nil {
		if err := p.historyManager.SaveHistory(); err != nil {
			p.logger.Warn("failed to save history", "file", p.historyManager.File(), "err", err)
		}
	}
	if p.terminal != nil {
		return p.terminal.Close()
	}
	return nil
}

// finalAnswer computes the submitted value and runs the validators on it.
func (p *Prompt) finalAnswer() (string, error) {
	answer := p.state.Content()
	if answer == "" && p.config.Default != "" {
		answer = p.config.Default
	}
	if err := validate(p.config.Validators, answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (p *Prompt) accept(answer string) (string, error) {
	display := p.config.Formatter(answer)
	if err := p.renderer.cleanup(p.config.Message, display); err != nil {
		return "", err
	}
	if p.historyManager != nil {
		p.historyManager.AddEntry(answer)
	}
	p.logger.Debug("answer accepted", "message", p.config.Message)
	return answer, nil
}

func (p *Prompt) abort(reason error) error {
	if err := p.renderer.abort(p.config.Message); err != nil {
		return errors.Join(reason, err)
	}
	return reason
}

// onChange handles every key other than submit, cancel and interrupt.
// Shortcuts get the first chance; keys no shortcut claimed edit the input.
func (p *Prompt) onChange(key Key) {
	before := p.state.Content()
	if p.dispatcher.OnChange(key, &p.state) == 0 {
		p.state.input.HandleKey(key)
	}
	if p.state.changed || p.state.Content() != before {
		p.state.refreshSuggestions()
		p.logger.Debug("suggestions refreshed", "key", key.String(), "count", len(p.state.suggestions))
	}
}

func (p *Prompt) render() error {
	r := p.renderer
	r.resetPrompt()

	if p.state.errMsg != "" {
		r.printErrorMessage(p.state.errMsg)
	}

	r.printPromptInput(p.config.Message, p.config.Default, p.state.input)

	page, selected := Paginate(p.pageSize, p.state.suggestions, p.state.highlighted)
	for i, option := range page {
		r.printOption(i == selected, option)
	}

	switch {
	case p.config.HelpMessage != "":
		r.printHelp(p.config.HelpMessage)
	case len(p.state.suggestions) > 0:
		r.printHelp(DefaultHelpMessage)
	}

	return r.flush()
}
