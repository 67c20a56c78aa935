package programs

import (
	"errors"

	"github.com/povarna/generative-ai-agents/dsa-lab/internal/datastructures/stack"
	"github.com/povarna/generative-ai-agents/dsa-lab/internal/menu"
)

func Stack() *menu.Program {
	st := stack.New()

	return &menu.Program{
		Name:  "stack",
		Title: "STACK OPERATIONS USING LINKED LIST",
		Options: []menu.Option{
			{Label: "Push (Insert)", Action: func(s *menu.Session) error {
				v, err := s.Ask("Enter value to push: ")
				if err != nil {
					return err
				}
				st.Push(v)
				s.Printf("%d pushed to stack.\n", v)
				return nil
			}},
			{Label: "Pop (Delete)", Action: func(s *menu.Session) error {
				v, err := st.Pop()
				if errors.Is(err, stack.ErrUnderflow) {
					s.Println("Stack Underflow! Cannot pop.")
					return nil
				}
				if err != nil {
					return err
				}
				s.Printf("%d popped from stack.\n", v)
				return nil
			}},
			{Label: "Display Stack", Action: func(s *menu.Session) error {
				if st.IsEmpty() {
					s.Println("Stack is empty.")
					return nil
				}
				printValues(s, "Stack elements (Top to Bottom): ", st.Values())
				return nil
			}},
			{Label: "Count Elements", Action: func(s *menu.Session) error {
				s.Printf("Total elements in stack: %d\n", st.Count())
				return nil
			}},
		},
	}
}
