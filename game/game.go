package game

import (
	"fmt"
	"math/rand"

	"github.com/minaorangina/klondike/deck"
	"go.uber.org/zap"
)

// Game is everything a controller or transport can do with a Klondike game
type Game interface {
	Start(cards []deck.Card, shuffle bool, numCascades, numDraw int) error

	MovePile(src, numCards, dst int) error
	MoveDraw(dst int) error
	MoveToFoundation(src, foundation int) error
	MoveDrawToFoundation(foundation int) error
	DiscardDraw() error

	IsGameOver() (bool, error)
	Won() (bool, error)
	Status() (Status, error)
	Score() (int, error)

	NumCascades() (int, error)
	NumFoundations() (int, error)
	NumDraw() (int, error)
	NumRows() (int, error)
	PileHeight(pile int) (int, error)
	CardVisible(pile, pos int) (bool, error)
	CardAt(pile, pos int) (deck.Card, error)
	FoundationTop(foundation int) (deck.Card, bool, error)
	DrawCards() ([]deck.Card, error)
	Board() (Board, error)
	Variant() Variant
}

// Klondike owns every pile of one game and applies the rules of its Variant.
// It is not safe for concurrent use.
type Klondike struct {
	variant     Variant
	state       GamePlayState
	cascades    []*CascadePile
	foundations []*FoundationPile
	draw        *DrawPile
	rand        *rand.Rand
	logger      *zap.Logger
}

// Opts configures a new game
type Opts struct {
	Variant Variant
	// Rand drives shuffling. A nil Rand uses the global source.
	Rand   *rand.Rand
	Logger *zap.Logger
}

// New constructs an unstarted game
func New(opts Opts) *Klondike {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Klondike{
		variant: opts.Variant,
		state:   gameNotStarted,
		rand:    opts.Rand,
		logger:  logger.With(zap.Stringer("variant", opts.Variant)),
	}
}

// NewBasic constructs an unstarted game of Basic Klondike
func NewBasic() *Klondike {
	return New(Opts{Variant: Basic})
}

// NewWhitehead constructs an unstarted game of Whitehead Klondike
func NewWhitehead() *Klondike {
	return New(Opts{Variant: Whitehead})
}

func (k *Klondike) Variant() Variant {
	return k.variant
}

// Start validates cards and deals them. The caller's slice is never modified.
func (k *Klondike) Start(cards []deck.Card, shuffle bool, numCascades, numDraw int) error {
	if k.state != gameNotStarted {
		return ErrGameStarted
	}
	if len(cards) == 0 {
		return ErrEmptyDeck
	}
	if numCascades <= 0 {
		return fmt.Errorf("%w: number of cascades must be positive, got %d", ErrArgument, numCascades)
	}
	if numDraw <= 0 {
		return fmt.Errorf("%w: draw count must be positive, got %d", ErrArgument, numDraw)
	}
	if err := deck.Validate(cards); err != nil {
		return fmt.Errorf("%w: %w", ErrRule, err)
	}
	if needed := numCascades * (numCascades + 1) / 2; len(cards) < needed {
		return fmt.Errorf("%w: %d cascades need %d cards, deck has %d", ErrTooFewCards, numCascades, needed, len(cards))
	}

	draw, err := NewDrawPile(numDraw)
	if err != nil {
		return err
	}

	working := deck.Deck(cards).Copy()
	if shuffle {
		working.ShuffleWith(k.rand)
	}

	k.cascades = make([]*CascadePile, numCascades)
	for i := range k.cascades {
		k.cascades[i] = NewCascadePile()
	}
	k.deal(&working)

	k.foundations = make([]*FoundationPile, deck.CountAces(cards))
	for i := range k.foundations {
		k.foundations[i] = NewFoundationPile()
	}

	k.draw = draw
	k.draw.cards = append(k.draw.cards, working...)

	k.state = gameStarted
	k.logger.Debug("game started",
		zap.Int("cards", len(cards)),
		zap.Bool("shuffle", shuffle),
		zap.Int("cascades", numCascades),
		zap.Int("foundations", len(k.foundations)),
		zap.Int("draw", k.draw.Len()),
	)
	return nil
}

// deal lays the triangle: row r puts one card on every pile from r onwards
func (k *Klondike) deal(working *deck.Deck) {
	for row := 0; row < len(k.cascades); row++ {
		for pile := row; pile < len(k.cascades); pile++ {
			next := working.Deal(1)
			if len(next) == 0 {
				return
			}
			k.cascades[pile].AddCard(next[0], k.variant.dealVisible(row, pile))
		}
	}
}

func (k *Klondike) checkStarted() error {
	if k.state != gameStarted {
		return ErrGameNotStarted
	}
	return nil
}

func (k *Klondike) cascade(idx int, what string) (*CascadePile, error) {
	if idx < 0 || idx >= len(k.cascades) {
		return nil, outOfRange(what, idx, len(k.cascades))
	}
	return k.cascades[idx], nil
}

func (k *Klondike) foundation(idx int) (*FoundationPile, error) {
	if idx < 0 || idx >= len(k.foundations) {
		return nil, outOfRange("foundation", idx, len(k.foundations))
	}
	return k.foundations[idx], nil
}

// canPlace reports whether lead may go on dst
func (k *Klondike) canPlace(lead deck.Card, dst *CascadePile) bool {
	if dst.Empty() {
		return k.variant.emptyPileAccepts(lead)
	}
	front, _ := dst.Front()
	return k.variant.stackable(front, lead)
}

func (k *Klondike) checkPlacement(lead deck.Card, dst *CascadePile) error {
	if k.canPlace(lead, dst) {
		return nil
	}
	if dst.Empty() {
		return fmt.Errorf("%w: %v cannot start an empty cascade", ErrCannotStack, lead)
	}
	front, _ := dst.Front()
	return fmt.Errorf("%w: %v cannot go on %v", ErrCannotStack, lead, front)
}

// MovePile moves the numCards front cards of cascade src onto cascade dst
func (k *Klondike) MovePile(src, numCards, dst int) error {
	if err := k.checkStarted(); err != nil {
		return err
	}
	source, err := k.cascade(src, "source pile")
	if err != nil {
		return err
	}
	dest, err := k.cascade(dst, "destination pile")
	if err != nil {
		return err
	}
	if src == dst {
		return ErrSamePile
	}
	if numCards <= 0 || numCards > source.Len() {
		return fmt.Errorf("%w: cannot move %d cards from a pile of %d", ErrArgument, numCards, source.Len())
	}
	start := source.Len() - numCards
	for i := start; i < source.Len(); i++ {
		if !source.cards[i].visible {
			return fmt.Errorf("%w: position %d of pile %d", ErrFaceDown, i, src)
		}
	}

	moving := source.topN(numCards)
	if !k.variant.validSequence(moving) {
		return ErrBadSequence
	}
	if err := k.checkPlacement(moving[0], dest); err != nil {
		return err
	}

	removed, err := source.RemoveTopN(numCards)
	if err != nil {
		return err
	}
	for _, c := range removed {
		dest.AddCard(c, true)
	}

	k.logger.Debug("moved pile", zap.Int("src", src), zap.Int("cards", numCards), zap.Int("dst", dst))
	return nil
}

// MoveDraw moves the front draw card onto cascade dst
func (k *Klondike) MoveDraw(dst int) error {
	if err := k.checkStarted(); err != nil {
		return err
	}
	dest, err := k.cascade(dst, "destination pile")
	if err != nil {
		return err
	}
	card, err := k.draw.Front()
	if err != nil {
		return err
	}
	if err := k.checkPlacement(card, dest); err != nil {
		return err
	}

	if _, err := k.draw.Draw(); err != nil {
		return err
	}
	dest.AddCard(card, true)

	k.logger.Debug("moved draw card", zap.Stringer("card", card), zap.Int("dst", dst))
	return nil
}

// MoveToFoundation moves the front card of cascade src onto a foundation
func (k *Klondike) MoveToFoundation(src, foundationIdx int) error {
	if err := k.checkStarted(); err != nil {
		return err
	}
	source, err := k.cascade(src, "source pile")
	if err != nil {
		return err
	}
	found, err := k.foundation(foundationIdx)
	if err != nil {
		return err
	}
	if source.Empty() {
		return fmt.Errorf("%w: source pile %d", ErrPileEmpty, src)
	}
	if !source.frontVisible() {
		return fmt.Errorf("%w: front card of pile %d is face down", ErrRule, src)
	}
	card, _ := source.Front()
	if err := found.Add(card); err != nil {
		return err
	}
	if _, err := source.RemoveTop(); err != nil {
		return err
	}

	k.logger.Debug("moved to foundation", zap.Stringer("card", card), zap.Int("src", src), zap.Int("foundation", foundationIdx))
	return nil
}

// MoveDrawToFoundation moves the front draw card onto a foundation
func (k *Klondike) MoveDrawToFoundation(foundationIdx int) error {
	if err := k.checkStarted(); err != nil {
		return err
	}
	found, err := k.foundation(foundationIdx)
	if err != nil {
		return err
	}
	card, err := k.draw.Front()
	if err != nil {
		return err
	}
	if err := found.Add(card); err != nil {
		return err
	}
	if _, err := k.draw.Draw(); err != nil {
		return err
	}

	k.logger.Debug("moved draw card to foundation", zap.Stringer("card", card), zap.Int("foundation", foundationIdx))
	return nil
}

// DiscardDraw cycles the front draw card to the back of the draw pile
func (k *Klondike) DiscardDraw() error {
	if err := k.checkStarted(); err != nil {
		return err
	}
	return k.draw.DiscardTopToBack()
}

// IsGameOver reports whether no move is left. It does not say whether the
// game was won; see Won.
func (k *Klondike) IsGameOver() (bool, error) {
	if err := k.checkStarted(); err != nil {
		return false, err
	}
	if !k.draw.Empty() {
		return false, nil
	}
	for _, pile := range k.cascades {
		if k.canMoveToAnyFoundation(pile) {
			return false, nil
		}
	}
	for i := range k.cascades {
		if k.canMoveBetweenCascades(i) {
			return false, nil
		}
	}
	return true, nil
}

func (k *Klondike) canMoveToAnyFoundation(pile *CascadePile) bool {
	if !pile.frontVisible() {
		return false
	}
	front, _ := pile.Front()
	for _, f := range k.foundations {
		if f.CanAccept(front) {
			return true
		}
	}
	return false
}

// canMoveBetweenCascades tries every face-up card of pile src as the lead of
// a move onto every other cascade
func (k *Klondike) canMoveBetweenCascades(src int) bool {
	source := k.cascades[src]
	first := source.FirstVisible()
	if first == -1 {
		return false
	}
	for pos := first; pos < source.Len(); pos++ {
		if !source.cards[pos].visible {
			continue
		}
		lead := source.cards[pos].card
		for dst, dest := range k.cascades {
			if dst == src {
				continue
			}
			if k.canPlace(lead, dest) {
				return true
			}
		}
	}
	return false
}

// Won reports whether every cascade and the draw pile have been cleared
func (k *Klondike) Won() (bool, error) {
	if err := k.checkStarted(); err != nil {
		return false, err
	}
	piles := []Pile{k.draw}
	for _, pile := range k.cascades {
		piles = append(piles, pile)
	}
	return allEmpty(piles...), nil
}

// Status combines IsGameOver and Won
func (k *Klondike) Status() (Status, error) {
	over, err := k.IsGameOver()
	if err != nil {
		return InProgress, err
	}
	if !over {
		return InProgress, nil
	}
	won, _ := k.Won()
	if won {
		return Won, nil
	}
	return Lost, nil
}

// Score is the sum of the foundations' top ranks
func (k *Klondike) Score() (int, error) {
	if err := k.checkStarted(); err != nil {
		return 0, err
	}
	score := 0
	for _, f := range k.foundations {
		if top, ok := f.Top(); ok {
			score += int(top.Rank)
		}
	}
	return score, nil
}

func (k *Klondike) NumCascades() (int, error) {
	if err := k.checkStarted(); err != nil {
		return 0, err
	}
	return len(k.cascades), nil
}

func (k *Klondike) NumFoundations() (int, error) {
	if err := k.checkStarted(); err != nil {
		return 0, err
	}
	return len(k.foundations), nil
}

// NumDraw is the size of the draw pile's visible window
func (k *Klondike) NumDraw() (int, error) {
	if err := k.checkStarted(); err != nil {
		return 0, err
	}
	return k.draw.NumDraw(), nil
}

// NumRows is the height of the tallest cascade
func (k *Klondike) NumRows() (int, error) {
	if err := k.checkStarted(); err != nil {
		return 0, err
	}
	rows := 0
	for _, pile := range k.cascades {
		if pile.Len() > rows {
			rows = pile.Len()
		}
	}
	return rows, nil
}

func (k *Klondike) PileHeight(pile int) (int, error) {
	if err := k.checkStarted(); err != nil {
		return 0, err
	}
	p, err := k.cascade(pile, "pile")
	if err != nil {
		return 0, err
	}
	return p.Len(), nil
}

func (k *Klondike) CardVisible(pile, pos int) (bool, error) {
	if err := k.checkStarted(); err != nil {
		return false, err
	}
	p, err := k.cascade(pile, "pile")
	if err != nil {
		return false, err
	}
	return p.VisibleAt(pos)
}

// CardAt returns a face-up cascade card
func (k *Klondike) CardAt(pile, pos int) (deck.Card, error) {
	visible, err := k.CardVisible(pile, pos)
	if err != nil {
		return deck.Card{}, err
	}
	if !visible {
		return deck.Card{}, fmt.Errorf("%w: position %d of pile %d", ErrFaceDown, pos, pile)
	}
	return k.cascades[pile].CardAt(pos)
}

// FoundationTop returns the top card of a foundation; ok is false while it is empty
func (k *Klondike) FoundationTop(foundationIdx int) (deck.Card, bool, error) {
	if err := k.checkStarted(); err != nil {
		return deck.Card{}, false, err
	}
	f, err := k.foundation(foundationIdx)
	if err != nil {
		return deck.Card{}, false, err
	}
	top, ok := f.Top()
	return top, ok, nil
}

// DrawCards returns the draw pile's visible window
func (k *Klondike) DrawCards() ([]deck.Card, error) {
	if err := k.checkStarted(); err != nil {
		return nil, err
	}
	return k.draw.Visible(), nil
}
