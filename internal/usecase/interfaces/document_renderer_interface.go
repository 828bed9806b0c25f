package interfaces

import "context"

// IDocumentRenderer abstracts the external document service that turns filled
// contract text into a distributable file. Rendering is outside the engine;
// only the filled text handed over here is part of the core contract. Wiring
// is nil-tolerant: without a renderer, contracts are still generated and
// stored as text.
type IDocumentRenderer interface {
	Render(ctx context.Context, conteudo string) (documentURL string, err error)
}
