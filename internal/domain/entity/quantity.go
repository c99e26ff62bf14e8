package entity

import (
	"encoding/json"
	"strconv"
)

// Quantity modela el stock de un producto como variante etiquetada: puede ser
// un entero conocido (incluido 0, que significa agotado) o desconocida, lo que
// en el JSON remoto viaja como null. Las dos cosas nunca se confunden: null no
// colapsa a cero y cero no se vuelve desconocido.
type Quantity struct {
	value int
	known bool
}

// KnownQty construye una cantidad conocida. Los valores negativos se recortan
// a cero: el stock nunca es negativo.
func KnownQty(v int) Quantity {
	if v < 0 {
		v = 0
	}
	return Quantity{value: v, known: true}
}

// UnknownQty construye una cantidad desconocida.
func UnknownQty() Quantity {
	return Quantity{}
}

// Known devuelve el valor y si la cantidad es conocida.
func (q Quantity) Known() (int, bool) {
	return q.value, q.known
}

// IsUnknown indica si la cantidad es desconocida.
func (q Quantity) IsUnknown() bool {
	return !q.known
}

// AtOrBelow aplica la regla de stock bajo: una cantidad desconocida siempre
// cuenta como baja; una conocida lo es cuando no supera el umbral.
func (q Quantity) AtOrBelow(threshold int) bool {
	if !q.known {
		return true
	}
	return q.value <= threshold
}

// OrZero devuelve el valor conocido, o 0 como base de edición cuando la
// cantidad es desconocida.
func (q Quantity) OrZero() int {
	return q.value
}

// String muestra "?" para una cantidad desconocida.
func (q Quantity) String() string {
	if !q.known {
		return "?"
	}
	return strconv.Itoa(q.value)
}

// MarshalJSON serializa una cantidad desconocida como null.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.known {
		return []byte("null"), nil
	}
	return json.Marshal(q.value)
}

// UnmarshalJSON acepta null (desconocida) o un entero; los negativos se
// recortan a cero igual que en el constructor.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var v *int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*q = UnknownQty()
		return nil
	}
	*q = KnownQty(*v)
	return nil
}
