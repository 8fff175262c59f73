package remote

// receiverABI is the call interface of the remote sale contract that the
// scheduler job forwards payloads to. Function names and argument types
// must stay in sync with the deployed receiver.
const receiverABI = `[
  {"type":"function","name":"set_paloma","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"update_compass","stateMutability":"nonpayable",
   "inputs":[{"name":"new_compass","type":"address"}],"outputs":[]},
  {"type":"function","name":"update_refund_wallet","stateMutability":"nonpayable",
   "inputs":[{"name":"new_refund_wallet","type":"address"}],"outputs":[]},
  {"type":"function","name":"update_gas_fee","stateMutability":"nonpayable",
   "inputs":[{"name":"new_gas_fee","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"update_service_fee_collector","stateMutability":"nonpayable",
   "inputs":[{"name":"new_service_fee_collector","type":"address"}],"outputs":[]},
  {"type":"function","name":"update_service_fee","stateMutability":"nonpayable",
   "inputs":[{"name":"new_service_fee","type":"uint256"}],"outputs":[]}
]`
