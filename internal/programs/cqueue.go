package programs

import (
	"errors"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/datastructures/circularqueue"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

// CircularQueue builds the ring buffer exercise with room for capacity items.
func CircularQueue(capacity int) (*menu.Program, error) {
	q, err := circularqueue.New(capacity)
	if err != nil {
		return nil, err
	}

	return &menu.Program{
		Name:  "cq",
		Title: "CIRCULAR QUEUE OPERATIONS",
		Options: []menu.Option{
			{Label: "Insert (Enqueue)", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to insert: ")
				if err != nil {
					return err
				}
				if err := q.Enqueue(v); err != nil {
					if errors.Is(err, circularqueue.ErrOverflow) {
						s.Printf("Queue Overflow! Cannot insert %d\n", v)
						return nil
					}
					return err
				}
				s.Printf("%d inserted into the queue.\n", v)
				return nil
			}},
			{Label: "Delete (Dequeue)", Action: func(s *menu.Session) error {
				v, err := q.Dequeue()
				if errors.Is(err, circularqueue.ErrUnderflow) {
					s.Println("Queue Underflow! Cannot delete.")
					return nil
				}
				if err != nil {
					return err
				}
				s.Printf("%d deleted from the queue.\n", v)
				return nil
			}},
			{Label: "Display Queue", Action: func(s *menu.Session) error {
				if q.IsEmpty() {
					s.Println("Queue is empty.")
					return nil
				}
				printValues(s, "Queue elements: ", q.Values())
				return nil
			}},
			{Label: "Count Elements", Action: func(s *menu.Session) error {
				s.Printf("Total elements in queue: %d\n", q.Count())
				return nil
			}},
		},
	}, nil
}
